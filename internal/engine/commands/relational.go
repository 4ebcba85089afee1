// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/rational"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
)

func compare(ok func(int) bool) func([]cell.T) cell.T {
	return func(args []cell.T) cell.T {
		validate.Variadic(args, 2, 2)

		prev := rational.Number(args[0])
		for _, c := range args[1:] {
			curr := rational.Number(c)
			if !ok(prev.Cmp(curr)) {
				return boolean.False
			}

			prev = curr
		}

		return boolean.True
	}
}

//nolint:gochecknoglobals
var (
	greaterThan        = compare(func(n int) bool { return n > 0 })
	greaterThanOrEqual = compare(func(n int) bool { return n >= 0 })
	lessThan           = compare(func(n int) bool { return n < 0 })
	lessThanOrEqual    = compare(func(n int) bool { return n <= 0 })
)

func equals(args []cell.T) cell.T {
	v, rest := validate.Variadic(args, 2, 2)
	if !v[0].Equal(v[1]) {
		return boolean.False
	}

	for _, c := range rest {
		if !v[0].Equal(c) {
			return boolean.False
		}
	}

	return boolean.True
}
