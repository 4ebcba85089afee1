// Released under an MIT license. See LICENSE.

// Package errsys provides the value bound by a catch clause.
package errsys

import (
	"errors"

	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/str"
)

const name = "error"

// T (errsys) is used to pass an error where a cell is expected.
type T struct {
	error
}

type errsys = T

// New creates a new errsys to wrap the error err.
func New(err error) *errsys {
	return &errsys{err}
}

// Message creates an errsys that carries only the message text.
func Message(text string) *errsys {
	return New(errors.New(text))
}

// The errsys type is a cell.

// Equal returns true if the cell c is an errsys with the same message.
func (e *errsys) Equal(c cell.T) bool {
	return Is(c) && e.Error() == To(c).Error()
}

// Name returns the name of the errsys type.
func (e *errsys) Name() string {
	return name
}

// The errsys type has a literal representation.

// Literal returns the literal representation of the errsys e.
func (e *errsys) Literal() string {
	return "Error: " + e.Error()
}

// The errsys type is a stringer.

// String returns the text representation of the errsys e.
func (e *errsys) String() string {
	return e.Literal()
}

// Methods specific to errsys.

// Message returns the error's message as a string cell.
func (e *errsys) Message() *str.T {
	return str.New(e.Error())
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

	panic("not an " + name)
}
