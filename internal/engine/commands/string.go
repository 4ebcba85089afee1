// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/literal"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/str"
)

func glob(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	m, err := adapted.Glob(common.String(v[0]))
	if err != nil {
		panic(err.Error())
	}

	matches := make([]cell.T, len(m))
	for i, s := range m {
		matches[i] = str.New(s)
	}

	return list.New(matches...)
}

func (ns *namespace) log(args []cell.T) cell.T {
	fmt.Fprintln(ns.out, join(args, common.String, " "))

	return null.Null
}

func (ns *namespace) logEscaped(args []cell.T) cell.T {
	fmt.Fprintln(ns.out, join(args, literal.String, " "))

	return null.Null
}

func match(args []cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	ok, err := adapted.Match(common.String(v[0]), common.String(v[1]))
	if err != nil {
		panic(err.Error())
	}

	return boolean.New(ok)
}

func toEscaped(args []cell.T) cell.T {
	return str.New(join(args, literal.String, " "))
}

func toString(args []cell.T) cell.T {
	return str.New(join(args, common.String, ""))
}

func join(args []cell.T, f func(cell.T) string, sep string) string {
	s := make([]string, len(args))
	for i, c := range args {
		s[i] = f(c)
	}

	return strings.Join(s, sep)
}
