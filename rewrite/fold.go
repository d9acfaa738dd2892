package rewrite

import (
	"math/big"

	"go.creack.net/binop/ast"
)

// maxFoldExponent bounds the exponents ConstantFold evaluates.
const maxFoldExponent = 64

// ConstantFold evaluates operators whose operands are both numeric literals.
// Results that are not unsigned integers (negative differences, inexact
// quotients) and unknown operators are left alone so the output stays
// parseable.
var ConstantFold = Rule{
	Name:    "constant_fold",
	Aliases: []string{"fold"},
	Doc:     "1 + 1 = 2",
	rewrite: func(b *ast.BinaryOp) (ast.Node, bool) {
		l, ok := b.Left.(*ast.Leaf)
		if !ok || !l.IsNumber() {
			return b, false
		}
		r, ok := b.Right.(*ast.Leaf)
		if !ok || !r.IsNumber() {
			return b, false
		}
		x, _ := new(big.Int).SetString(l.Value, 10)
		y, _ := new(big.Int).SetString(r.Value, 10)
		z, ok := evaluate(b.Op, x, y)
		if !ok {
			return b, false
		}
		return ast.NewLeaf(z.String()), true
	},
}

func evaluate(op string, x, y *big.Int) (*big.Int, bool) {
	z := new(big.Int)
	switch op {
	case ast.OpAdd:
		return z.Add(x, y), true
	case ast.OpMul:
		return z.Mul(x, y), true
	case ast.OpSub:
		if x.Cmp(y) < 0 {
			return nil, false
		}
		return z.Sub(x, y), true
	case ast.OpDiv:
		if y.Sign() == 0 {
			return nil, false
		}
		q, m := new(big.Int).QuoRem(x, y, new(big.Int))
		if m.Sign() != 0 {
			return nil, false
		}
		return q, true
	case ast.OpMod:
		if y.Sign() == 0 {
			return nil, false
		}
		return z.Rem(x, y), true
	case ast.OpPow:
		if y.Cmp(big.NewInt(maxFoldExponent)) > 0 {
			return nil, false
		}
		return z.Exp(x, y, nil), true
	}
	return nil, false
}
