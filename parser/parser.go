// Package parser builds expression trees from prefix (Polish) notation.
package parser

import (
	"go.creack.net/binop/ast"
	"go.creack.net/binop/lexer"
)

type parser struct {
	tokens []lexer.Token
	cursor int

	strict bool
}

// Parser reads consecutive prefix expressions from a token stream.
type Parser interface {
	// Next parses one expression starting at the cursor.
	Next() (ast.Node, error)
	// Remaining returns the number of tokens not consumed yet.
	Remaining() int
}

// Option configures a parser.
type Option func(*parser)

// Strict rejects unknown operator symbols with ErrMalformedOperand and
// leftover tokens with ErrTrailingTokens. Without it any non-operand token is
// accepted as an operator and leftover tokens are the caller's concern.
func Strict(strict bool) Option {
	return func(p *parser) { p.strict = strict }
}

func newParser(tokens []lexer.Token, opts ...Option) *parser {
	p := &parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// New returns a Parser over tokens. The slice is never modified.
func New(tokens []lexer.Token, opts ...Option) Parser {
	return newParser(tokens, opts...)
}

// Parse builds a tree from pre-split tokens, e.g. strings.Fields(line).
func Parse(tokens []string, opts ...Option) (ast.Node, error) {
	return ParseTokens(lexer.FromStrings(tokens), opts...)
}

// ParseString lexes a line of text and builds a tree from it.
func ParseString(input string, opts ...Option) (ast.Node, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, opts...)
}

// ParseTokens builds a single tree from tokens.
func ParseTokens(tokens []lexer.Token, opts ...Option) (ast.Node, error) {
	p := newParser(tokens, opts...)
	n, err := p.Next()
	if err != nil {
		return nil, err
	}
	if p.strict && p.Remaining() > 0 {
		return nil, p.errorAt(p.cursor, ErrTrailingTokens)
	}
	return n, nil
}

func (p *parser) Remaining() int { return len(p.tokens) - p.cursor }

// Next consumes tokens in pre-order: an operand becomes a leaf, anything else
// an operator whose left then right operands follow. Operators still waiting
// for an operand are kept on an explicit stack instead of the call stack.
// On error the cursor is left after the offending token.
func (p *parser) Next() (ast.Node, error) {
	var (
		root    ast.Node
		pending []*ast.BinaryOp
	)
	for {
		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}

		var n ast.Node
		switch {
		case tok.Type.IsOperand():
			n = ast.NewLeaf(tok.Value)
		case p.strict && !ast.IsOperator(tok.Value):
			return nil, p.errorAt(p.cursor-1, ErrMalformedOperand)
		default:
			n = &ast.BinaryOp{Op: tok.Value}
		}

		if len(pending) == 0 {
			root = n
		} else if parent := pending[len(pending)-1]; parent.Left == nil {
			parent.Left = n
		} else {
			parent.Right = n
			pending = pending[:len(pending)-1]
		}

		if op, ok := n.(*ast.BinaryOp); ok {
			pending = append(pending, op)
		}
		if len(pending) == 0 {
			return root, nil
		}
	}
}

func (p *parser) nextToken() (lexer.Token, error) {
	if p.cursor >= len(p.tokens) {
		return lexer.Token{}, p.errorAt(p.cursor, ErrUnexpectedEOF)
	}
	tok := p.tokens[p.cursor]
	p.cursor++
	return tok, nil
}

func (p *parser) errorAt(index int, err error) error {
	e := &Error{Index: index, Offset: -1, Err: err}
	if index < len(p.tokens) {
		e.Token = p.tokens[index].Value
		e.Offset = p.tokens[index].Pos()
	}
	return e
}
