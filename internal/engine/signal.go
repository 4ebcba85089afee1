// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/env"
)

// A signal tells the evaluation loop what to do after a form is handled.
type signal interface {
	signal()
}

// Return ends evaluation with Value.
type Return struct {
	Value cell.T
}

// Continue restarts evaluation with Ast in Env.
type Continue struct {
	Ast cell.T
	Env *env.T
}

func (Return) signal()   {}
func (Continue) signal() {}
