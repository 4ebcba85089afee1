// Released under an MIT license. See LICENSE.

// Package rational defines the interface for ensemble's numeric types.
package rational

import (
	"math/big"

	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

// T (rational) is anything that can be treated as a rational number.
type T interface {
	Rat() *big.Rat
}

// Number returns the *big.Rat value for a cell, if possible.
func Number(c cell.T) *big.Rat {
	r, ok := c.(T)
	if !ok {
		// Not all cell types can be treated as numbers.
		panic(c.Name() + " cannot be used in a numeric expression")
	}

	return r.Rat()
}
