package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	for {
		r := l.peek()
		if l.pos >= len(l.input) {
			l.ignore()
			return l.emit(TokEOF)
		}
		if !unicode.IsSpace(r) {
			break
		}
		l.next()
	}
	l.ignore()

	switch r := l.peek(); {
	case r == utf8.RuneError:
		return l.errorf("invalid utf-8 at offset %d", l.pos)
	case strings.ContainsRune(digits, r):
		return lexNumber
	case strings.ContainsRune(identStartChars, r):
		return lexIdentifier
	default:
		return lexOperator
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if !l.atBoundary() {
		// "12ab" is not a number: the whole word is an operator symbol.
		return lexOperator
	}
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identChars)
	if !l.atBoundary() {
		return lexOperator
	}
	return l.emit(TokIdentifier)
}

func lexOperator(l *Lexer) stateFn {
	l.acceptWord()
	if i := invalidRune(l.input[l.start:l.pos]); i >= 0 {
		return l.errorf("invalid utf-8 at offset %d", l.start+i)
	}
	return l.emit(TokOperator)
}

// invalidRune returns the index of the first invalid UTF-8 sequence in s, or -1.
func invalidRune(s string) int {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return -1
}
