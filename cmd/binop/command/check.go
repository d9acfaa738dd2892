package command

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.creack.net/binop/parser"
	"go.creack.net/binop/testbench"
)

const defaultFixtureDir = "testbench"

func NewCheckCmd(v *viper.Viper) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Run rewrite fixtures from a directory.",
		Long: `Run rewrite fixtures from a directory.

The directory holds one sub-directory per rule (e.g. arith_id, mult_id,
mult_by_zero), each with inputs/ and outputs/ files of the same name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags(), KeyStrict); err != nil {
				return err
			}
			dir := defaultFixtureDir
			if len(args) > 0 {
				dir = args[0]
			}
			glog.V(1).Infof("Running fixtures from %s.", dir)
			results, err := testbench.RunAll(os.DirFS(dir), parser.Strict(v.GetBool(KeyStrict)))
			if err != nil {
				return err
			}
			failed := 0
			for _, res := range results {
				if !res.OK() {
					failed++
				}
				if !res.OK() || !quiet {
					fmt.Fprintln(cmd.OutOrStdout(), res)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d fixtures failed", failed, len(results))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d fixtures passed\n", len(results))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failures")
	return cmd
}
