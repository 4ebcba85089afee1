// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

func (ns *namespace) gensym(args []cell.T) cell.T {
	v := validate.Fixed(args, 0, 1)

	prefix := "G__"
	if len(v) == 1 {
		prefix = common.String(v[0])
	}

	return ns.symbols.Gensym(prefix)
}

func (ns *namespace) symbol(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return ns.symbols.Intern(common.String(v[0]))
}
