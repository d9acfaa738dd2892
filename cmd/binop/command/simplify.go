package command

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.creack.net/binop/ast"
	"go.creack.net/binop/rewrite"
)

func registerSimplifyFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(flagName(KeyFold), false, "fold constant sub-expressions after the identity rules")
	cmd.Flags().Bool(flagName(KeyFixedPoint), false, "repeat the rules until the expression stops changing")
	cmd.Flags().Int(flagName(KeyMaxRounds), rewrite.DefaultMaxRounds, "maximum number of rounds with --fixed-point")
}

func NewSimplifyCmd(v *viper.Viper) *cobra.Command {
	var rules []string

	cmd := &cobra.Command{
		Use:   "simplify [expression]",
		Short: "Apply the simplification rules to prefix expressions.",
		Long: `Apply the simplification rules to prefix expressions.

By default one round of additive identity, multiplicative identity and
multiplication by zero is applied. With --rule, only the named rules run, once
each, in the given order. Without arguments, one expression per line is read
from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags(), KeyNotation, KeyStrict, KeyFold, KeyFixedPoint, KeyMaxRounds); err != nil {
				return err
			}
			s, err := settingsFrom(v)
			if err != nil {
				return err
			}
			selected := make([]rewrite.Rule, 0, len(rules))
			for _, name := range rules {
				r, err := rewrite.Lookup(name)
				if err != nil {
					return err
				}
				selected = append(selected, r)
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
				if len(selected) > 0 {
					for _, r := range selected {
						tree = r.Apply(tree)
					}
				} else {
					res := s.simplifier.Run(tree)
					tree = res.Tree
					glog.V(1).Infof("%q: %d rewrites in %d rounds %v", expr, res.Trace.Total, res.Rounds, res.Trace.Counts)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ast.Format(tree, s.notation))
			}
			return nil
		},
	}
	registerNotationFlag(cmd)
	registerSimplifyFlags(cmd)
	cmd.Flags().StringSliceVarP(&rules, "rule", "r", nil, "apply only these rules, in order (e.g. arith_id,mult_id)")
	return cmd
}
