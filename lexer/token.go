package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Operands.
	TokNumber
	TokIdentifier

	// Anything else is an operator symbol.
	TokOperator

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",
	TokOperator:   "OPERATOR",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperand reports whether tokens of this type become leaves.
func (tt TokenType) IsOperand() bool {
	return tt.IsOneOf(TokNumber, TokIdentifier)
}

// Token represents a lexical token of a prefix expression.
type Token struct {
	Type  TokenType
	Value string

	pos int // Byte offset in the input, -1 when the token was pre-split.
}

// Pos returns the byte offset of the token in the lexed line, or -1 when the
// token did not come from a Lexer.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return fmt.Sprintf("ERROR [%d]: %s", t.pos, t.Value)
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}

// Classify returns the type of an already split token.
func Classify(s string) TokenType {
	switch {
	case s == "":
		return TokOperator
	case isAll(s, digits):
		return TokNumber
	case isIdentifier(s):
		return TokIdentifier
	default:
		return TokOperator
	}
}

// FromStrings types pre-split tokens, e.g. the result of strings.Fields.
func FromStrings(fields []string) []Token {
	toks := make([]Token, 0, len(fields))
	for _, f := range fields {
		toks = append(toks, Token{Type: Classify(f), Value: f, pos: -1})
	}
	return toks
}
