package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"go.creack.net/binop/cmd/binop/command"
)

func main() {
	// glog registers its flags (-v, -logtostderr, ...) on the standard flag set.
	_ = flag.Set("logtostderr", "true")
	_ = flag.CommandLine.Parse(nil)

	cmd := command.NewRootCmd()
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
