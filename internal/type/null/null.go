// Released under an MIT license. See LICENSE.

// Package null provides ensemble's null value.
package null

import (
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

const name = "null"

// T (null) has exactly one value, Null.
type T struct{}

// Null is the absence of a value.
var Null = &T{} //nolint:gochecknoglobals

// The null type is a cell.

// Equal returns true if c is Null.
func (n *T) Equal(c cell.T) bool {
	return Is(c)
}

// Name returns the name of the null type.
func (n *T) Name() string {
	return name
}

// The null type is a boolean.

// Bool returns false.
func (n *T) Bool() bool {
	return false
}

// The null type has a literal representation.

// Literal returns "null".
func (n *T) Literal() string {
	return name
}

// String returns "null".
func (n *T) String() string {
	return name
}

// Is returns true if c is Null.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}
