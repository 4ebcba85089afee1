// Released under an MIT license. See LICENSE.

// Package common defines helpers shared by ensemble's cell types.
package common

import (
	"fmt"

	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

// Stringer is implemented by cells with a plain text form.
type Stringer = fmt.Stringer

// String returns the string value for a cell, if possible.
func String(c cell.T) string {
	if c == nil {
		panic("unmatched value <nil>")
	}

	b, ok := c.(Stringer)
	if !ok {
		panic(c.Name() + " cannot be used in a string context")
	}

	return b.String()
}
