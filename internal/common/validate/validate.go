// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins.
// Its functions panic; callers recover at the native boundary.
package validate

import (
	"fmt"

	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

// Variadic checks that actual has at least min elements and returns the
// first max elements (or fewer) and whatever follows them.
func Variadic(actual []cell.T, min, max int) ([]cell.T, []cell.T) {
	if len(actual) < min {
		s := Count(min, "argument", "s")
		panic(fmt.Sprintf("expected %s, passed %d", s, len(actual)))
	}

	if len(actual) > max {
		return actual[:max], actual[max:]
	}

	return actual, nil
}

// Fixed checks that actual has between min and max elements.
func Fixed(actual []cell.T, min, max int) []cell.T {
	expected, rest := Variadic(actual, min, max)
	if len(rest) != 0 {
		s := Count(max, "argument", "s")
		if min != max {
			s = "at most " + s
		}

		panic(fmt.Sprintf("expected %s, passed %d", s, len(actual)))
	}

	return expected
}

// Count returns n and label, pluralized with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
