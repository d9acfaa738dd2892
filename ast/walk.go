package ast

// Traversals keep their own stack so that arbitrarily deep trees cannot
// overflow the goroutine stack.

type frame struct {
	node     Node
	expanded bool
}

// Fold reduces the tree bottom-up. leaf is called for every operand and op
// for every operator once both of its operands have been reduced. Operands
// are visited left to right.
func Fold[T any](n Node, leaf func(*Leaf) T, op func(b *BinaryOp, left, right T) T) T {
	var (
		stack   = []frame{{node: n}}
		results []T
	)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch x := f.node.(type) {
		case *Leaf:
			results = append(results, leaf(x))
		case *BinaryOp:
			if !f.expanded {
				// Right is pushed first so Left is reduced first.
				stack = append(stack, frame{node: x, expanded: true}, frame{node: x.Right}, frame{node: x.Left})
				continue
			}
			left, right := results[len(results)-2], results[len(results)-1]
			results = append(results[:len(results)-2], op(x, left, right))
		default:
			panic(unsupported(x))
		}
	}
	return results[0]
}

// Transform rebuilds the tree bottom-up, replacing every node with fn's
// result. fn sees an operator only after both operands were transformed.
// Operators whose operands did not change are passed to fn as-is.
func Transform(n Node, fn func(Node) Node) Node {
	return Fold(n,
		func(l *Leaf) Node { return fn(l) },
		func(b *BinaryOp, left, right Node) Node {
			if left == b.Left && right == b.Right {
				return fn(b)
			}
			return fn(NewBinaryOp(b.Op, left, right))
		},
	)
}

// Walk calls fn for every node in pre-order with the node's depth (the root
// is at depth 0). Returning false skips the node's operands.
func Walk(n Node, fn func(n Node, depth int) bool) {
	type item struct {
		node  Node
		depth int
	}
	stack := []item{{node: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(it.node, it.depth) {
			continue
		}
		switch x := it.node.(type) {
		case *Leaf:
		case *BinaryOp:
			stack = append(stack, item{x.Right, it.depth + 1}, item{x.Left, it.depth + 1})
		default:
			panic(unsupported(x))
		}
	}
}

// Equal reports whether a and b have the same shape and values.
func Equal(a, b Node) bool {
	type pair struct{ a, b Node }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch x := p.a.(type) {
		case *Leaf:
			y, ok := p.b.(*Leaf)
			if !ok || x.Value != y.Value {
				return false
			}
		case *BinaryOp:
			y, ok := p.b.(*BinaryOp)
			if !ok || x.Op != y.Op {
				return false
			}
			stack = append(stack, pair{x.Right, y.Right}, pair{x.Left, y.Left})
		default:
			panic(unsupported(x))
		}
	}
	return true
}

// Stats summarizes the size of a tree.
type Stats struct {
	Nodes     int
	Leaves    int
	Operators int
	Height    int // A single leaf has height 1.
}

// Measure computes the Stats of the tree.
func Measure(n Node) Stats {
	return Fold(n,
		func(*Leaf) Stats { return Stats{Nodes: 1, Leaves: 1, Height: 1} },
		func(_ *BinaryOp, l, r Stats) Stats {
			return Stats{
				Nodes:     l.Nodes + r.Nodes + 1,
				Leaves:    l.Leaves + r.Leaves,
				Operators: l.Operators + r.Operators + 1,
				Height:    max(l.Height, r.Height) + 1,
			}
		},
	)
}
