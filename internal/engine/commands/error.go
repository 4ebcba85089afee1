// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/errsys"
)

func message(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return errsys.To(v[0]).Message()
}

func throw(args []cell.T) cell.T {
	v := validate.Fixed(args, 0, 1)

	text := "thrown"
	if len(v) == 1 {
		text = common.String(v[0])
	}

	panic(failure.New(failure.Native, "%s", text))
}
