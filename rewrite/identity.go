package rewrite

import "go.creack.net/binop/ast"

// In every rule below the right operand is checked first and the left one
// only when the right did not match, so "0 + 0" fires on the right operand.

// AdditiveIdentity rewrites x + 0 and 0 + x to x.
var AdditiveIdentity = Rule{
	Name:    "additive_identity",
	Aliases: []string{"arith_id", "add_id"},
	Doc:     "x + 0 = x, 0 + x = x",
	rewrite: func(b *ast.BinaryOp) (ast.Node, bool) {
		if b.Op != ast.OpAdd {
			return b, false
		}
		switch {
		case ast.IsLiteral(b.Right, "0"):
			return b.Left, true
		case ast.IsLiteral(b.Left, "0"):
			return b.Right, true
		}
		return b, false
	},
}

// MultiplicativeIdentity rewrites x * 1 and 1 * x to x.
var MultiplicativeIdentity = Rule{
	Name:    "multiplicative_identity",
	Aliases: []string{"mult_id", "mul_id"},
	Doc:     "x * 1 = x, 1 * x = x",
	rewrite: func(b *ast.BinaryOp) (ast.Node, bool) {
		if b.Op != ast.OpMul {
			return b, false
		}
		switch {
		case ast.IsLiteral(b.Right, "1"):
			return b.Left, true
		case ast.IsLiteral(b.Left, "1"):
			return b.Right, true
		}
		return b, false
	},
}

// MultByZero rewrites x * 0 and 0 * x to the zero operand.
var MultByZero = Rule{
	Name:    "mult_by_zero",
	Aliases: []string{"mul_zero"},
	Doc:     "x * 0 = 0, 0 * x = 0",
	rewrite: func(b *ast.BinaryOp) (ast.Node, bool) {
		if b.Op != ast.OpMul {
			return b, false
		}
		switch {
		case ast.IsLiteral(b.Right, "0"):
			return b.Right, true
		case ast.IsLiteral(b.Left, "0"):
			return b.Left, true
		}
		return b, false
	},
}
