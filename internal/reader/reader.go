// Released under an MIT license. See LICENSE.

// Package reader turns ensemble source text into cells.
package reader

import (
	"errors"
	"strings"

	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/reader/lexer"
	"github.com/ensemble-lang/ensemble/internal/reader/parser"
)

// T (reader) encapsulates the ensemble lexer and parser.
type T struct {
	label string
	opts  []parser.Option
}

type reader = T

// New creates a new reader. The label names the source in syntax errors.
func New(label string, opts ...parser.Option) *T {
	return &T{label: label, opts: opts}
}

// Read returns the first form in text.
func (r *reader) Read(text string) (cell.T, error) {
	return r.parser(text).Parse()
}

// ReadAll returns every top-level form in text.
func (r *reader) ReadAll(text string) ([]cell.T, error) {
	p := r.parser(text)

	forms := []cell.T{}
	for p.More() {
		c, err := p.Parse()
		if err != nil {
			return nil, err
		}

		forms = append(forms, c)
	}

	return forms, nil
}

func (r *reader) parser(text string) *parser.T {
	l := lexer.New(r.label)

	l.Scan(text)

	return parser.New(l.Token, r.opts...)
}

// Read returns the first form in text using the default symbol table and
// no host namespace.
func Read(text string) (cell.T, error) {
	return New("input").Read(text)
}

// IsSyntax returns true if err is a syntax failure.
func IsSyntax(err error) bool {
	return failure.KindOf(err) == failure.Syntax
}

// Incomplete returns true if err means text ended inside a form.
// More input may complete it.
func Incomplete(err error) bool {
	return IsSyntax(err) && strings.HasSuffix(text(err), "got EOF")
}

// Empty returns true if err means text held no forms at all.
func Empty(err error) bool {
	return IsSyntax(err) && text(err) == "EOF"
}

func text(err error) string {
	var f *failure.Error
	if errors.As(err, &f) {
		return f.Text
	}

	return ""
}
