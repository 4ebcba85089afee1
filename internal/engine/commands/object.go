// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
	"github.com/ensemble-lang/ensemble/internal/type/errsys"
	"github.com/ensemble-lang/ensemble/internal/type/hash"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/str"
)

func entries(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	h := hash.To(v[0])

	pairs := make([]cell.T, 0, h.Size())
	for _, k := range h.Keys() {
		e, _ := h.Get(k)
		pairs = append(pairs, list.New(str.New(k), e))
	}

	return list.New(pairs...)
}

// getIn follows a path of keys and indexes into nested objects and
// arrays. A missing step yields null.
func getIn(args []cell.T) cell.T {
	v, path := validate.Variadic(args, 1, 1)

	c := v[0]
	for _, k := range path {
		c = step(c, k)
		if c == nil {
			return null.Null
		}
	}

	return c
}

func hasOwn(args []cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	h, ok := v[0].(*hash.T)
	if !ok {
		return boolean.False
	}

	_, ok = h.Get(common.String(v[1]))

	return boolean.New(ok)
}

func step(c, k cell.T) cell.T {
	switch t := c.(type) {
	case *hash.T:
		e, _ := t.Get(common.String(k))
		return e
	case *list.T:
		return t.At(index(k))
	case *errsys.T:
		if common.String(k) == "message" {
			return t.Message()
		}
	}

	return nil
}
