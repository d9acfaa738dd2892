package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is returned when the tokens run out while a node is
	// still expected.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrMalformedOperand is returned in strict mode for a token that is
	// neither an operand nor a known operator.
	ErrMalformedOperand = errors.New("malformed operand")
	// ErrTrailingTokens is returned in strict mode when tokens are left over
	// after a complete expression.
	ErrTrailingTokens = errors.New("trailing tokens after expression")
)

// Error locates a parse failure in the token stream.
type Error struct {
	Index  int    // Index of the offending token, len(tokens) at end of input.
	Token  string // Offending token, empty at end of input.
	Offset int    // Byte offset of Token in the input line, -1 when unknown.
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Token == "":
		return fmt.Sprintf("token %d: %s", e.Index, e.Err)
	case e.Offset < 0:
		return fmt.Sprintf("token %d (%q): %s", e.Index, e.Token, e.Err)
	}
	return fmt.Sprintf("token %d (%q) at offset %d: %s", e.Index, e.Token, e.Offset, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
