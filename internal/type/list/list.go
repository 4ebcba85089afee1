// Released under an MIT license. See LICENSE.

// Package list provides ensemble's ordered sequence type. A list is both a
// literal array and the shape of every call form.
package list

import (
	"strings"

	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/literal"
)

const name = "array"

// T (list) is an ordered sequence of cells.
type T struct {
	items []cell.T
}

// New creates a list holding items. The list takes ownership of the slice.
func New(items ...cell.T) *T {
	return &T{items: items}
}

// The list type is a cell.

// Equal returns true if c is a list with elements that are equal to l's.
func (l *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	if !ok || len(o.items) != len(l.items) {
		return false
	}

	for i, v := range l.items {
		if !v.Equal(o.items[i]) {
			return false
		}
	}

	return true
}

// Name returns the name for the list type.
func (l *T) Name() string {
	return name
}

// The list type has a literal representation.

// Literal returns the literal representation of the list l.
func (l *T) Literal() string {
	return l.join(literal.String)
}

// The list type is a stringer.

// String returns the text representation of the list l.
func (l *T) String() string {
	return l.join(common.String)
}

// Methods specific to list.

// At returns the element at index i or nil if there is no such element.
func (l *T) At(i int) cell.T {
	if i < 0 || i >= len(l.items) {
		return nil
	}

	return l.items[i]
}

// Items returns the elements of l. The slice must not be modified.
func (l *T) Items() []cell.T {
	return l.items
}

// Len returns the number of elements in l.
func (l *T) Len() int {
	return len(l.items)
}

// Map returns a new list with fn applied to each element of l.
// It stops at the first error.
func (l *T) Map(fn func(cell.T) (cell.T, error)) (*T, error) {
	items := make([]cell.T, len(l.items))

	for i, v := range l.items {
		r, err := fn(v)
		if err != nil {
			return nil, err
		}

		items[i] = r
	}

	return New(items...), nil
}

func (l *T) join(f func(cell.T) string) string {
	s := make([]string, len(l.items))
	for i, v := range l.items {
		s[i] = f(v)
	}

	return "[" + strings.Join(s, ", ") + "]"
}

// Functions specific to list.

// Cons returns a new list with h in front of the elements of t.
func Cons(h cell.T, t *T) *T {
	items := make([]cell.T, 0, len(t.items)+1)
	items = append(items, h)
	items = append(items, t.items...)

	return New(items...)
}

// Concat returns a new list holding the elements of every list in ls.
func Concat(ls ...*T) *T {
	n := 0
	for _, l := range ls {
		n += len(l.items)
	}

	items := make([]cell.T, 0, n)
	for _, l := range ls {
		items = append(items, l.items...)
	}

	return New(items...)
}

// Head returns the first element of c if c is a non-empty list.
func Head(c cell.T) (cell.T, bool) {
	l, ok := c.(*T)
	if !ok || len(l.items) == 0 {
		return nil, false
	}

	return l.items[0], true
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
