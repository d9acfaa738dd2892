package command

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"go.creack.net/binop/ast"
)

func NewGenerateCmd() *cobra.Command {
	var (
		depth, count, maxLiteral int
		seed                     int64
		ops, vars                []string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random prefix expressions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return fmt.Errorf("invalid depth %d: must not be negative", depth)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			for _, op := range ops {
				if !ast.IsOperator(op) {
					return fmt.Errorf("unknown operator %q", op)
				}
			}
			g := &ast.Generator{
				Rand:       rand.New(rand.NewSource(seed)),
				Ops:        ops,
				VarNames:   vars,
				MaxLiteral: maxLiteral,
			}
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), ast.Prefix(g.Generate(depth)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 3, "maximum expression height")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of expressions")
	cmd.Flags().IntVar(&maxLiteral, "max-literal", ast.DefaultMaxLiteral, "largest numeric literal")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the current time)")
	cmd.Flags().StringSliceVar(&ops, "ops", []string{ast.OpAdd, ast.OpMul}, "operators to use")
	cmd.Flags().StringSliceVar(&vars, "vars", []string{"x", "y"}, "variable names to use")
	return cmd
}
