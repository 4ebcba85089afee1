// Released under an MIT license. See LICENSE.

// Package boolean provides ensemble's true and false values.
package boolean

import (
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

const name = "boolean"

// T (boolean) wraps Go's bool type. There are only two values.
type T bool

//nolint:gochecknoglobals
var (
	t = T(true)
	f = T(false)

	// True is the true value.
	True = &t

	// False is the false value.
	False = &f
)

// New returns True or False.
func New(v bool) *T {
	if v {
		return True
	}

	return False
}

// The boolean type is a cell.

// Equal returns true if c is the same boolean as b.
func (b *T) Equal(c cell.T) bool {
	return Is(c) && *b == *To(c)
}

// Name returns the name of the boolean type.
func (b *T) Name() string {
	return name
}

// The boolean type is a boolean.

// Bool returns the value of the boolean b.
func (b *T) Bool() bool {
	return bool(*b)
}

// The boolean type has a literal representation.

// Literal returns the literal representation of the boolean b.
func (b *T) Literal() string {
	return b.String()
}

// The boolean type is a stringer.

// String returns "true" or "false".
func (b *T) String() string {
	if *b {
		return "true"
	}

	return "false"
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if b, ok := c.(*T); ok {
		return b
	}

	panic("not a " + name)
}
