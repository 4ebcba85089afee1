// Released under an MIT license. See LICENSE.

// Package sym provides ensemble's symbol cell type.
package sym

import (
	"strconv"
	"sync"

	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

const name = "symbol"

// T (symbol) is an interned name. Symbols from the same table with the same
// name are the same pointer so they can be compared with ==.
type T struct {
	name string
}

// Table interns symbols. It only ever grows.
type Table struct {
	sync.RWMutex
	m map[string]*T
	n int
}

// Default is the process-wide symbol table.
var Default = NewTable() //nolint:gochecknoglobals

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{m: map[string]*T{}}
}

// New interns v in the default table.
func New(v string) *T {
	return Default.Intern(v)
}

// Intern returns the symbol for v, creating it if necessary.
func (t *Table) Intern(v string) *T {
	if s, ok := t.Lookup(v); ok {
		return s
	}

	t.Lock()
	defer t.Unlock()

	if s, ok := t.m[v]; ok {
		return s
	}

	s := &T{name: v}
	t.m[v] = s

	return s
}

// Lookup returns the symbol for v if it has already been interned.
func (t *Table) Lookup(v string) (*T, bool) {
	t.RLock()
	defer t.RUnlock()

	s, ok := t.m[v]

	return s, ok
}

// Gensym interns a symbol whose name has not been used before.
func (t *Table) Gensym(prefix string) *T {
	for {
		t.Lock()
		t.n++
		v := prefix + strconv.Itoa(t.n)
		_, taken := t.m[v]
		t.Unlock()

		if !taken {
			return t.Intern(v)
		}
	}
}

// The symbol type is a cell.

// Equal returns true if c is the same symbol as s.
func (s *T) Equal(c cell.T) bool {
	return s == c
}

// Name returns the type name for the symbol s.
func (s *T) Name() string {
	return name
}

// The symbol type has a literal representation.

// Literal returns the literal representation of the symbol s.
func (s *T) Literal() string {
	return s.name
}

// The symbol type is a stringer.

// String returns the text of the symbol s.
func (s *T) String() string {
	return s.name
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
