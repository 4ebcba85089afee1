// Released under an MIT license. See LICENSE.

// Package env provides ensemble's lexical environment (frame) type.
package env

import (
	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/literal"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/str"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

const name = "environment"

// Variadic is the parameter marker that collects the remaining arguments.
var Variadic = sym.New("&") //nolint:gochecknoglobals

// T (env) maps symbols to values and links to the enclosing frame.
// The parent link never changes once the frame has been created.
type T struct {
	parent   *T
	bindings map[*sym.T]cell.T
}

// Binding is a name and value used to seed a root frame.
type Binding struct {
	Symbol *sym.T
	Value  cell.T
}

// Root creates a parentless frame seeded with bindings, in order.
func Root(bindings ...Binding) *T {
	e := &T{bindings: make(map[*sym.T]cell.T, len(bindings))}

	for _, b := range bindings {
		e.bindings[b.Symbol] = b.Value
	}

	return e
}

// Child creates an empty frame enclosed by parent.
func Child(parent *T) *T {
	return &T{parent: parent, bindings: map[*sym.T]cell.T{}}
}

// New creates a frame enclosed by parent that binds params to args.
// The counts must match unless params contains the variadic marker
// followed by a symbol that collects the remaining arguments. Parameters
// before the marker that have no argument are bound to null.
func New(parent *T, params, args []cell.T) (*T, error) {
	e := &T{parent: parent, bindings: make(map[*sym.T]cell.T, len(params))}

	marker := required(params)
	variadic := marker < len(params)

	if variadic && marker+2 != len(params) {
		return nil, failure.New(failure.FormShape,
			"'&' must be followed by exactly one parameter").
			With("params", describe(list.New(params...)))
	}

	for i, p := range params[:marker] {
		s, ok := p.(*sym.T)
		if !ok {
			return nil, notSymbol(p)
		}

		switch {
		case i < len(args):
			e.bindings[s] = args[i]
		case variadic:
			e.bindings[s] = null.Null
		default:
			return nil, mismatch(params, args)
		}
	}

	if !variadic {
		if len(params) != len(args) {
			return nil, mismatch(params, args)
		}

		return e, nil
	}

	rest, ok := params[marker+1].(*sym.T)
	if !ok {
		return nil, notSymbol(params[marker+1])
	}

	collected := []cell.T{}
	if len(args) > marker {
		collected = make([]cell.T, len(args)-marker)
		copy(collected, args[marker:])
	}

	e.bindings[rest] = list.New(collected...)

	return e, nil
}

// The env type is a cell.

// Equal returns true if c is the same env as e.
func (e *T) Equal(c cell.T) bool {
	return e == c
}

// Name returns the type name for the env e.
func (e *T) Name() string {
	return name
}

// Methods specific to env.

// Find returns the nearest frame, starting with e, that binds s.
func (e *T) Find(s *sym.T) *T {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.bindings[s]; ok {
			return f
		}
	}

	return nil
}

// Get returns the value bound to s in e or an enclosing frame.
func (e *T) Get(s *sym.T) (cell.T, error) {
	f := e.Find(s)
	if f == nil {
		return nil, failure.New(failure.Unbound, "'%s' not found in env.", s.String()).
			With("symbol", s.String())
	}

	return f.bindings[s], nil
}

// Lookup returns the value bound to s without reporting why it is missing.
func (e *T) Lookup(s *sym.T) (cell.T, bool) {
	f := e.Find(s)
	if f == nil {
		return nil, false
	}

	return f.bindings[s], true
}

// Parent returns the enclosing frame.
func (e *T) Parent() *T {
	return e.parent
}

// Set binds s to v in e itself, never in an enclosing frame, and returns v.
func (e *T) Set(s *sym.T, v cell.T) cell.T {
	e.bindings[s] = v

	return v
}

// Size returns the number of bindings held directly by e.
func (e *T) Size() int {
	return len(e.bindings)
}

// isVariadic matches the marker by name so symbols from any table, and
// the string "&", are accepted.
func isVariadic(c cell.T) bool {
	switch t := c.(type) {
	case *sym.T:
		return t.String() == Variadic.String()
	case *str.T:
		return t.String() == Variadic.String()
	}

	return false
}

func mismatch(params, args []cell.T) error {
	return failure.New(failure.ArityMismatch,
		"arity mismatch: expected %d argument(s), passed %d", required(params), len(args)).
		With("bindings", describe(list.New(params...))).
		With("expressions", describe(list.New(args...)))
}

func notSymbol(c cell.T) error {
	return failure.New(failure.FormShape, "parameter %s is not a symbol", describe(c))
}

// describe renders c for a diagnostic.
func describe(c cell.T) (s string) {
	defer func() {
		if recover() != nil {
			s = "<unprintable>"
		}
	}()

	return literal.String(c)
}

func required(params []cell.T) int {
	for i, p := range params {
		if isVariadic(p) {
			return i
		}
	}

	return len(params)
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
