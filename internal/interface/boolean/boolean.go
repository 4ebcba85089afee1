// Released under an MIT license. See LICENSE.

// Package boolean defines the interface for ensemble's notion of truth.
package boolean

import (
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

// T (boolean) is anything that has an opinion about its own truthiness.
type T interface {
	Bool() bool
}

// Value returns the truth value for a cell. Only null, false and the number
// zero are false. Cells that do not implement T are true.
func Value(c cell.T) bool {
	b, ok := c.(T)
	if !ok {
		return true
	}

	return b.Bool()
}
