// Released under an MIT license. See LICENSE.

// Package callable defines the interface shared by native functions and closures.
package callable

import (
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

// T (callable) is anything that can be applied to evaluated arguments.
type T interface {
	cell.T

	Call(args []cell.T) (cell.T, error)
}

// Is returns true if c can be called.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}
