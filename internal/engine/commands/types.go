// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/callable"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
	"github.com/ensemble-lang/ensemble/internal/type/hash"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/num"
	"github.com/ensemble-lang/ensemble/internal/type/str"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

type macro interface {
	IsMacro() bool
}

func is(p func(cell.T) bool) func([]cell.T) cell.T {
	return func(args []cell.T) cell.T {
		v := validate.Fixed(args, 1, 1)

		return boolean.New(p(v[0]))
	}
}

//nolint:gochecknoglobals
var (
	isArray    = is(list.Is)
	isBoolean  = is(boolean.Is)
	isFunction = is(callable.Is)
	isNull     = is(null.Is)
	isNumber   = is(num.Is)
	isObject   = is(hash.Is)
	isString   = is(str.Is)
	isSymbol   = is(sym.Is)

	isMacro = is(func(c cell.T) bool {
		m, ok := c.(macro)
		return ok && m.IsMacro()
	})
)
