// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the ensemble language.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/reader/token"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
	"github.com/ensemble-lang/ensemble/internal/type/hash"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/num"
	"github.com/ensemble-lang/ensemble/internal/type/str"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

//nolint:gochecknoglobals
var (
	numberRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	stringRegex = regexp.MustCompile(`^"(?:\\.|[^\\"])*"$`)
)

// Global resolves a dot-separated path in the host's global namespace.
type Global func(path string) (cell.T, bool)

// Option configures a parser.
type Option func(*T)

// WithGlobal sets the function used to resolve host paths.
func WithGlobal(g Global) Option {
	return func(p *T) {
		p.global = g
	}
}

// WithSymbols sets the table symbols are interned in.
func WithSymbols(s *sym.Table) Option {
	return func(p *T) {
		p.symbols = s
	}
}

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.

	global  Global
	symbols *sym.Table
}

// New creates a new parser that consumes tokens produced by item.
func New(item func() *token.T, opts ...Option) *T {
	p := &T{item: item, symbols: sym.Default}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// More returns true if there are tokens left to parse.
func (p *T) More() bool {
	return p.peek() != nil
}

// Parse reads the next complete form.
func (p *T) Parse() (c cell.T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		c = nil

		switch r := r.(type) {
		case *failure.Error:
			err = r
		case error:
			err = failure.Wrap(failure.Syntax, r, "")
		case string:
			err = failure.Wrap(failure.Syntax, errors.New(r), "")
		case common.Stringer:
			err = failure.Wrap(failure.Syntax, errors.New(r.String()), "")
		default:
			err = failure.New(failure.Syntax, "unexpected error")
		}
	}()

	return p.form(), nil
}

func (p *T) next() *token.T {
	t := p.peek()

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) fail(t *token.T, format string, args ...interface{}) {
	e := failure.New(failure.Syntax, format, args...)
	if t != nil {
		e = e.With("source", t.Source().String())
	}

	panic(e)
}

// T state functions.

// <form> ::= '[' <form>* ']' | '{' (<key> <form>)* '}' | <atom> .
func (p *T) form() cell.T {
	t := p.peek()
	if t == nil {
		p.fail(nil, "EOF")
	}

	switch {
	case t.Is(']', '}'):
		p.fail(t, "unexpected '%s'", t.Value())
	case t.Is('['):
		return p.sequence()
	case t.Is('{'):
		return p.object()
	}

	return p.atom()
}

// <sequence> ::= '[' <form>* ']' .
func (p *T) sequence() cell.T {
	p.next()

	items := []cell.T{}

	for {
		t := p.peek()
		if t == nil {
			p.fail(nil, "expected ']', got EOF")
		}

		if t.Is(']') {
			p.next()

			return list.New(items...)
		}

		items = append(items, p.form())
	}
}

// <object> ::= '{' (<key> <form>)* '}' .
func (p *T) object() cell.T {
	p.next()

	h := hash.New()

	for {
		t := p.peek()
		if t == nil {
			p.fail(nil, "expected '}', got EOF")
		}

		if t.Is('}') {
			p.next()

			return h
		}

		k := p.key()

		t = p.peek()
		if t == nil {
			p.fail(nil, "expected '}', got EOF")
		}

		if t.Is('}') {
			p.fail(t, "odd number of forms in object literal; '%s' has no value", k)
		}

		h.Set(k, p.form())
	}
}

// <key> ::= <keyword> | <atom> .
//
// A keyword in key position loses its trailing colon, so {foo: 1} and
// {"foo" 1} build the same object. Anywhere else a keyword is read
// verbatim as the string "foo:" (see atom).
func (p *T) key() string {
	t := p.peek()

	v := t.Value()
	if t.Is(token.Symbol) && len(v) > 1 && strings.HasSuffix(v, ":") {
		p.next()

		return v[:len(v)-1]
	}

	c := p.form()

	switch c.(type) {
	case *str.T, *num.T, *boolean.T, *null.T, *sym.T:
		return common.String(c)
	}

	p.fail(t, "%s cannot be used as an object key", c.Name())

	return ""
}

// <atom> ::= null | false | true | <number> | <string> | <keyword> | <path> | <symbol> .
func (p *T) atom() cell.T {
	t := p.next()
	v := t.Value()

	if t.Is(token.DoubleQuoted) {
		if !stringRegex.MatchString(v) {
			p.fail(t, `expected '"', got EOF`)
		}

		return str.New(str.Unescape(v[1 : len(v)-1]))
	}

	switch v {
	case "null":
		return null.Null
	case "false":
		return boolean.False
	case "true":
		return boolean.True
	}

	if numberRegex.MatchString(v) {
		return num.New(v)
	}

	// Keywords mimic object keys, e.g. { foo: "test" }.
	if strings.HasSuffix(v, ":") {
		return str.New(v)
	}

	if p.global != nil {
		if c, ok := p.global(v); ok {
			return c
		}
	}

	if s, ok := p.symbols.Lookup(v); ok {
		return s
	}

	return p.symbols.Intern(v)
}

// String returns a description of the parser's lookahead. Useful for debugging.
func (p *T) String() string {
	if p.ahead == 0 || p.token == nil {
		return "parser(<none>)"
	}

	return fmt.Sprintf("parser(%s)", p.token.String())
}
