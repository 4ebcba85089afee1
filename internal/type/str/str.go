// Released under an MIT license. See LICENSE.

// Package str provides ensemble's string type.
package str

import (
	"strings"

	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

const name = "string"

// T (string) wraps Go's string type.
type T string

// New creates a new string cell.
func New(v string) *T {
	s := T(v)
	return &s
}

// The string type is a cell.

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *T) Equal(c cell.T) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the name of the string type.
func (s *T) Name() string {
	return name
}

// The string type has a literal representation.

// Literal returns the quoted and escaped representation of the string s.
func (s *T) Literal() string {
	return `"` + Escape(string(*s)) + `"`
}

// The string type is a stringer.

// String returns the text of the string s.
func (s *T) String() string {
	return string(*s)
}

// Functions specific to str.

//nolint:gochecknoglobals
var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// Escape escapes backslashes, double quotes and newlines in v.
func Escape(v string) string {
	return escaper.Replace(v)
}

// Unescape reverses Escape. A backslash followed by n is a newline and a
// backslash followed by any other character is that character.
func Unescape(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}

	var b strings.Builder

	b.Grow(len(v))

	escaped := false
	for _, r := range v {
		switch {
		case escaped && r == 'n':
			b.WriteRune('\n')
		case escaped:
			b.WriteRune(r)
		case r == '\\':
			escaped = true
			continue
		default:
			b.WriteRune(r)
		}

		escaped = false
	}

	return b.String()
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}
