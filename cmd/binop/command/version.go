package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Filled in by `go build -ldflags="-X go.creack.net/binop/cmd/binop/command.Version=..."`.
var (
	BuildDate string
	Version   string
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if Version == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "binop snapshot")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "binop %s built %s\n", Version, BuildDate)
			return nil
		},
	}
}
