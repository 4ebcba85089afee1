// Released under an MIT license. See LICENSE.

// Package hash provides ensemble's string-keyed map type.
package hash

import (
	"strings"

	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/literal"
)

const name = "object"

// T (hash) maps strings to cells. Keys are kept in insertion order.
type T struct {
	keys []string
	m    map[string]cell.T
}

// New creates a new, empty hash.
func New() *T {
	return &T{m: map[string]cell.T{}}
}

// The hash type is a cell.

// Equal returns true if c is a hash with the same keys mapped to equal cells.
func (h *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	if !ok || len(o.m) != len(h.m) {
		return false
	}

	for k, v := range h.m {
		ov, ok := o.m[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}

	return true
}

// Name returns the name of the hash type.
func (h *T) Name() string {
	return name
}

// The hash type has a literal representation.

// Literal returns the literal representation of the hash h.
func (h *T) Literal() string {
	return h.join(literal.String)
}

// The hash type is a stringer.

// String returns the text representation of the hash h.
func (h *T) String() string {
	return h.join(common.String)
}

// Methods specific to hash.

// Get retrieves the cell associated with the key k.
func (h *T) Get(k string) (cell.T, bool) {
	if h == nil {
		return nil, false
	}

	v, ok := h.m[k]

	return v, ok
}

// Keys returns the keys of h in insertion order. The slice must not be modified.
func (h *T) Keys() []string {
	return h.keys
}

// Set associates the key k with the cell v in the hash h.
func (h *T) Set(k string, v cell.T) {
	if _, ok := h.m[k]; !ok {
		h.keys = append(h.keys, k)
	}

	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *T) Size() int {
	return len(h.m)
}

// Map returns a new hash with fn applied to each value in h.
// It stops at the first error.
func (h *T) Map(fn func(cell.T) (cell.T, error)) (*T, error) {
	fresh := New()

	for _, k := range h.keys {
		v, err := fn(h.m[k])
		if err != nil {
			return nil, err
		}

		fresh.Set(k, v)
	}

	return fresh, nil
}

func (h *T) join(f func(cell.T) string) string {
	s := make([]string, len(h.keys))
	for i, k := range h.keys {
		s[i] = k + ": " + f(h.m[k])
	}

	return "{" + strings.Join(s, ", ") + "}"
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
