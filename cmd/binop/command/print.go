package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.creack.net/binop/ast"
)

func registerNotationFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flagName(KeyNotation), "n", "prefix", `output notation ("prefix", "infix", "postfix" or "tree")`)
}

func NewPrintCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [expression]",
		Short: "Print prefix expressions in another notation.",
		Long:  "Print prefix expressions in another notation. Without arguments, one expression per line is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags(), KeyNotation, KeyStrict); err != nil {
				return err
			}
			s, err := settingsFrom(v)
			if err != nil {
				return err
			}
			exprs, err := expressions(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, expr := range exprs {
				tree, err := s.parse(expr)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ast.Format(tree, s.notation))
			}
			return nil
		},
	}
	registerNotationFlag(cmd)
	return cmd
}
