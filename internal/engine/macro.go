// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/env"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

// macroCall returns the macro named by the head of ast, if there is one.
func macroCall(ast cell.T, scope *env.T) (*Closure, bool) {
	head, ok := list.Head(ast)
	if !ok {
		return nil, false
	}

	s, ok := head.(*sym.T)
	if !ok {
		return nil, false
	}

	v, ok := scope.Lookup(s)
	if !ok {
		return nil, false
	}

	m, ok := v.(*Closure)

	return m, ok && m.macro
}

// macroExpand rewrites ast until its head no longer names a macro.
func (e *T) macroExpand(ast cell.T, scope *env.T) (cell.T, error) {
	for {
		m, ok := macroCall(ast, scope)
		if !ok {
			return ast, nil
		}

		e.tracef("macroexpand", ast)

		node := list.To(ast)

		expanded, err := m.Call(node.Items()[1:])
		if err != nil {
			if failure.KindOf(err) == failure.Interrupted {
				return nil, err
			}

			return nil, failure.Wrap(failure.MacroExpansion, err,
				"expanding '%s'", sym.To(node.At(0)).String())
		}

		ast = expanded
	}
}
