// Released under an MIT license. See LICENSE.

package commands

import (
	"time"

	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/num"
)

func now(args []cell.T) cell.T {
	validate.Fixed(args, 0, 0)

	return num.Int(int(time.Now().UnixMilli()))
}
