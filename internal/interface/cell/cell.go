// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all ensemble values.
package cell

// T (cell) is the basic unit of storage in ensemble. Code and data are both
// built out of cells.
type T interface {
	Equal(c T) bool
	Name() string
}
