// Released under an MIT license. See LICENSE.

// Package native provides ensemble's type for functions implemented in Go.
package native

import (
	"errors"
	"fmt"

	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

const name = "native"

// T (native) is a function implemented in Go that takes evaluated arguments.
type T struct {
	label string
	fn    func(args []cell.T) (cell.T, error)
}

// New creates a native function that may fail.
func New(label string, fn func(args []cell.T) (cell.T, error)) *T {
	return &T{label: label, fn: fn}
}

// Func creates a native function that signals failure by panicking.
func Func(label string, fn func(args []cell.T) cell.T) *T {
	return New(label, func(args []cell.T) (cell.T, error) {
		return fn(args), nil
	})
}

// The native type is a cell.

// Equal returns true if c is the same native function as n.
func (n *T) Equal(c cell.T) bool {
	return n == c
}

// Name returns the name of the native type.
func (n *T) Name() string {
	return name
}

// The native type has a literal representation.

// Literal returns an opaque placeholder for the native function n.
func (n *T) Literal() string {
	return "#<fn " + n.label + ">"
}

// String returns the same placeholder as Literal.
func (n *T) String() string {
	return n.Literal()
}

// The native type is callable.

// Call applies n to args. Panics raised by the Go function are recovered
// and, like any error it returns, reported as native failures.
func (n *T) Call(args []cell.T) (result cell.T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		result = nil
		err = Failure(n.label, r)
	}()

	result, err = n.fn(args)
	if err != nil {
		var f *failure.Error
		if !errors.As(err, &f) {
			err = failure.Wrap(failure.Native, err, "")
		}

		return nil, err
	}

	return result, nil
}

// Label returns the name the native function n was registered under.
func (n *T) Label() string {
	return n.label
}

// Failure converts a recovered panic value into an error.
func Failure(label string, r interface{}) error {
	switch r := r.(type) {
	case *failure.Error:
		return r
	case error:
		return failure.Wrap(failure.Native, r, "").With("function", label)
	case string:
		return failure.New(failure.Native, "%s", r).With("function", label)
	case fmt.Stringer:
		return failure.New(failure.Native, "%s", r.String()).With("function", label)
	}

	return failure.New(failure.Native, "unexpected error").With("function", label)
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
