// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	truth "github.com/ensemble-lang/ensemble/internal/interface/boolean"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
)

func and(args []cell.T) cell.T {
	for _, c := range args {
		if !truth.Value(c) {
			return boolean.False
		}
	}

	return boolean.True
}

func not(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return boolean.New(!truth.Value(v[0]))
}

func or(args []cell.T) cell.T {
	for _, c := range args {
		if truth.Value(c) {
			return boolean.True
		}
	}

	return boolean.False
}
