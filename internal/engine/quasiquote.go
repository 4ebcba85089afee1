// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/hash"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

// quasiquote rewrites a template into the cons and concat calls that
// build it. It never evaluates anything.
func (e *T) quasiquote(c cell.T) cell.T {
	switch n := c.(type) {
	case *sym.T, *hash.T:
		return list.New(e.names.quote, c)
	case *list.T:
		if e.tagged(n, e.names.unquote) {
			return operand(n)
		}

		var acc cell.T = list.New()

		items := n.Items()
		for i := len(items) - 1; i >= 0; i-- {
			elt := items[i]

			if l, ok := elt.(*list.T); ok && e.tagged(l, e.names.spliceUnquote) {
				acc = list.New(e.names.concat, operand(l), acc)
			} else {
				acc = list.New(e.names.cons, e.quasiquote(elt), acc)
			}
		}

		return acc
	}

	return c
}

func (e *T) tagged(l *list.T, s *sym.T) bool {
	h, ok := list.Head(l)

	return ok && h == s
}

func operand(l *list.T) cell.T {
	if c := l.At(1); c != nil {
		return c
	}

	return null.Null
}
