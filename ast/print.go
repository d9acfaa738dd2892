package ast

import "strings"

// Notation selects one of the textual forms of a tree.
type Notation int

// Supported notations.
const (
	NotationPrefix Notation = iota
	NotationInfix
	NotationPostfix
	NotationTree
)

var notationStrings = map[Notation]string{
	NotationPrefix:  "prefix",
	NotationInfix:   "infix",
	NotationPostfix: "postfix",
	NotationTree:    "tree",
}

func (n Notation) String() string {
	if s, ok := notationStrings[n]; ok {
		return s
	}
	return "unknown"
}

// ParseNotation maps a notation name back to its Notation.
func ParseNotation(s string) (Notation, bool) {
	for n, name := range notationStrings {
		if strings.EqualFold(name, s) {
			return n, true
		}
	}
	return 0, false
}

// Format renders n in the given notation.
func Format(n Node, notation Notation) string {
	switch notation {
	case NotationInfix:
		return Infix(n)
	case NotationPostfix:
		return Postfix(n)
	case NotationTree:
		return Dump(n)
	default:
		return Prefix(n)
	}
}

// Prefix renders the tree in Polish notation, e.g. "+ x y".
func Prefix(n Node) string {
	var sb strings.Builder
	first := true
	Walk(n, func(n Node, _ int) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(n.Text())
		return true
	})
	return sb.String()
}

// Infix renders the tree with every operator fully parenthesized, e.g. "(x + y)".
func Infix(n Node) string {
	// An item is either a node still to render or literal text.
	type item struct {
		node Node
		text string
	}
	var sb strings.Builder
	stack := []item{{node: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch x := it.node.(type) {
		case nil:
			sb.WriteString(it.text)
		case *Leaf:
			sb.WriteString(x.Value)
		case *BinaryOp:
			sb.WriteByte('(')
			stack = append(stack, item{text: ")"}, item{node: x.Right}, item{text: " " + x.Op + " "}, item{node: x.Left})
		default:
			panic(unsupported(x))
		}
	}
	return sb.String()
}

// Postfix renders the tree in reverse Polish notation, e.g. "x y +".
func Postfix(n Node) string {
	var sb strings.Builder
	first := true
	write := func(s string) struct{} {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(s)
		return struct{}{}
	}
	Fold(n,
		func(l *Leaf) struct{} { return write(l.Value) },
		func(b *BinaryOp, _, _ struct{}) struct{} { return write(b.Op) },
	)
	return sb.String()
}

// Dump renders one node per line, operands indented two spaces deeper than
// their operator.
func Dump(n Node) string {
	var sb strings.Builder
	first := true
	Walk(n, func(n Node, depth int) bool {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.Text())
		return true
	})
	return sb.String()
}
