// Package ast defines the binary operator expression tree.
//
// A tree is built once by the parser and never mutated afterwards: rewrites
// return a new tree that may reuse unchanged subtrees of the old one.
package ast

import "fmt"

// Operator symbols known to the rewrite rules and the strict parser.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
	OpMod = "%"
	OpPow = "^"
)

// Operators lists every operator symbol in Op* order.
var Operators = []string{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow}

// Node is an expression tree node. It is either a *Leaf or a *BinaryOp.
type Node interface {
	// Text returns the leaf value or the operator symbol.
	Text() string
	node()
}

// Leaf is an operand: a numeric literal or a variable name, kept as written.
type Leaf struct {
	Value string
}

func (*Leaf) node()          {}
func (l *Leaf) Text() string { return l.Value }

// IsNumber reports whether the leaf is an unsigned integer literal.
func (l *Leaf) IsNumber() bool { return IsNumber(l.Value) }

// BinaryOp applies Op to its two operands. Left and Right are never nil in a
// well-formed tree.
type BinaryOp struct {
	Op    string
	Left  Node
	Right Node
}

func (*BinaryOp) node()          {}
func (b *BinaryOp) Text() string { return b.Op }

// IsNumber reports whether s is an unsigned integer literal.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsOperator reports whether s is one of the known operator symbols.
func IsOperator(s string) bool {
	for _, op := range Operators {
		if op == s {
			return true
		}
	}
	return false
}

// IsLiteral reports whether n is a leaf holding exactly value.
func IsLiteral(n Node, value string) bool {
	l, ok := n.(*Leaf)
	return ok && l.Value == value
}

// NewLeaf returns a leaf for value.
func NewLeaf(value string) *Leaf { return &Leaf{Value: value} }

// NewBinaryOp returns an operator node.
func NewBinaryOp(op string, left, right Node) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

func unsupported(n Node) error {
	return fmt.Errorf("unsupported node type %T", n)
}
