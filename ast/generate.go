package ast

import (
	"math/rand"
	"strconv"
)

// DefaultMaxLiteral bounds the numeric literals produced by a Generator when
// MaxLiteral is 0.
const DefaultMaxLiteral = 10

// A Generator generates random expression trees.
type Generator struct {
	// Rand is the source of randomness. If nil, the global source is used.
	Rand *rand.Rand

	// Ops stores the allowed operators. If empty, "+" and "*" are used.
	Ops []string

	// VarNames stores the allowed variable names.
	VarNames []string

	// MaxLiteral is the largest numeric literal generated.
	MaxLiteral int
}

// Generate generates a random tree with a given maximum height.
// If maxDepth is 0 or less, the result is a single leaf.
func (g *Generator) Generate(maxDepth int) Node {
	if maxDepth <= 0 || g.intn(maxDepth+1) == 0 {
		return g.randomLeaf()
	}
	ops := g.Ops
	if len(ops) == 0 {
		ops = []string{OpAdd, OpMul}
	}
	return &BinaryOp{
		Op:    ops[g.intn(len(ops))],
		Left:  g.Generate(maxDepth - 1),
		Right: g.Generate(maxDepth - 1),
	}
}

func (g *Generator) randomLeaf() *Leaf {
	if len(g.VarNames) > 0 && g.intn(2) == 0 {
		return NewLeaf(g.VarNames[g.intn(len(g.VarNames))])
	}
	limit := g.MaxLiteral
	if limit <= 0 {
		limit = DefaultMaxLiteral
	}
	return NewLeaf(strconv.Itoa(g.intn(limit + 1)))
}

func (g *Generator) intn(n int) int {
	if g.Rand != nil {
		return g.Rand.Intn(n)
	}
	return rand.Intn(n)
}
