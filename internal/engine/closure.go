// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/env"
	"github.com/ensemble-lang/ensemble/internal/type/list"
)

// Closure is a user-defined function or macro.
type Closure struct {
	body   cell.T
	engine *T
	macro  bool
	params *list.T
	scope  *env.T
}

// The closure type is a cell.

// Equal returns true if c is the same closure as f.
func (f *Closure) Equal(c cell.T) bool {
	return f == c
}

// Name returns the type name for the closure f.
func (f *Closure) Name() string {
	if f.macro {
		return "macro"
	}

	return "function"
}

// The closure type has a literal representation.

// Literal returns the literal representation of the closure f.
func (f *Closure) Literal() string {
	return "#<" + f.Name() + ">"
}

// The closure type is a stringer.

// String returns the text representation of the closure f.
func (f *Closure) String() string {
	return f.Literal()
}

// The closure type is callable.

// Call evaluates the body of f with params bound to args.
func (f *Closure) Call(args []cell.T) (cell.T, error) {
	scope, err := env.New(f.scope, f.params.Items(), args)
	if err != nil {
		return nil, err
	}

	return f.engine.Eval(f.body, scope)
}

// Methods specific to closure.

// Body returns the form evaluated when f is called.
func (f *Closure) Body() cell.T {
	return f.body
}

// Env returns the frame f closes over.
func (f *Closure) Env() *env.T {
	return f.scope
}

// IsMacro returns true if f is a macro.
func (f *Closure) IsMacro() bool {
	return f.macro
}

// Params returns f's parameter list.
func (f *Closure) Params() *list.T {
	return f.params
}

func (f *Closure) copy() *Closure {
	params := make([]cell.T, f.params.Len())
	copy(params, f.params.Items())

	c := *f
	c.params = list.New(params...)

	return &c
}
