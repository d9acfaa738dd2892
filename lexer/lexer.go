// Package lexer splits a line of text into the whitespace-delimited tokens of
// a prefix expression.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	digits          = "0123456789"
	identStartChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	identChars      = identStartChars + digits
)

// ErrInvalidInput is returned by Tokenize when the line cannot be lexed.
var ErrInvalidInput = errors.New("invalid input")

type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize lexes the whole input. The trailing EOF token is not included.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var toks []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokEOF:
			return toks, nil
		case TokError:
			return toks, fmt.Errorf("%w: %s", ErrInvalidInput, tok.Value)
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Value: "EOF", pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

// acceptWord consumes everything up to the next space or the end of input.
func (l *Lexer) acceptWord() {
	for {
		r := l.next()
		if l.atEOF {
			return
		}
		if unicode.IsSpace(r) {
			l.backup()
			return
		}
	}
}

// atBoundary reports whether the current token ends here.
func (l *Lexer) atBoundary() bool {
	r := l.peek()
	return l.pos >= len(l.input) || unicode.IsSpace(r)
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emit(tt TokenType) stateFn {
	l.curToken = l.thisToken(tt)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) errorf(format string, args ...any) stateFn {
	l.curToken = Token{
		Type:  TokError,
		Value: fmt.Sprintf(format, args...),
		pos:   l.start,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

func isAll(s, valid string) bool {
	for _, r := range s {
		if !strings.ContainsRune(valid, r) {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	return s != "" && strings.ContainsRune(identStartChars, rune(s[0])) && isAll(s[1:], identChars)
}
