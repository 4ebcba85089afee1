// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the ensemble language.
//
// The ensemble lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk "Lexical
// Scanning in Go". See https://talks.golang.org/2011/lex.slide for more
// information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ensemble-lang/ensemble/internal/reader/loc"
	"github.com/ensemble-lang/ensemble/internal/reader/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	runes int    // Runes scanned on the current line.
	saved action // Escaped action.
	state action // Current action.

	source loc.T // Where the current token starts.
	line   int   // Line of the current byte.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// The text is appended to anything not yet scanned.
func (l *T) Scan(text string) {
	l.bytes += text

	if l.state == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// Tokens scans all of text and returns the value of every token.
func Tokens(text string) []string {
	l := New("tokens")

	l.Scan(text)

	values := []string{}
	for t := l.Token(); t != nil; t = l.Token() {
		values = append(values, t.Value())
	}

	return values
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) ahead(s string) bool {
	return strings.HasPrefix(l.bytes[l.index:], s)
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.source))
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped
	return a
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)
	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil
	return resumed
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

// T states.

func escapeNextCharacter(l *T) action {
	l.next()

	return l.resume()
}

func scanDoubleQuoted(l *T) action {
	for {
		switch l.next() {
		case eof:
			// Unterminated. The parser reports the error.
			l.emit(token.DoubleQuoted)
			return nil
		case '"':
			l.emit(token.DoubleQuoted)
			return skipWhitespace
		case '\\':
			return l.escape(scanDoubleQuoted, escapeNextCharacter)
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.emit(token.Symbol)
			return nil
		case separator(r) || delimiter(r) || r == '"':
			l.emit(token.Symbol)
			return skipWhitespace
		case r == '/' && l.ahead("//"):
			l.emit(token.Symbol)
			return skipComment
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.skip()
			return nil
		case '\n':
			l.skip()
			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.skip()
			return nil
		case separator(r):
			l.accept(r, w)
			l.skip()
		case delimiter(r):
			l.accept(r, w)
			l.emit(r)
			return skipWhitespace
		case r == '"':
			l.accept(r, w)
			return scanDoubleQuoted
		case r == '/' && l.ahead("//"):
			return skipComment
		default:
			return scanSymbol
		}
	}
}

// Helper functions.

func delimiter(r token.Class) bool {
	switch r {
	case '[', ']', '{', '}':
		return true
	}

	return false
}

func separator(r token.Class) bool {
	return r == ',' || r == ';' || unicode.IsSpace(rune(r))
}
