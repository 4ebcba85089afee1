// Released under an MIT license. See LICENSE.

package commands

import (
	"unicode/utf8"

	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/rational"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/num"
	"github.com/ensemble-lang/ensemble/internal/type/str"
)

func array(args []cell.T) cell.T {
	items := make([]cell.T, len(args))
	copy(items, args)

	return list.New(items...)
}

func at(args []cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	l := list.To(v[0])

	i := index(v[1])
	if i < 0 {
		i += l.Len()
	}

	if c := l.At(i); c != nil {
		return c
	}

	return null.Null
}

func concat(args []cell.T) cell.T {
	ls := make([]*list.T, len(args))
	for i, c := range args {
		ls[i] = list.To(c)
	}

	return list.Concat(ls...)
}

func cons(args []cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return list.Cons(v[0], list.To(v[1]))
}

func first(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	if h, ok := list.Head(v[0]); ok {
		return h
	}

	return null.Null
}

func isEmpty(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	switch c := v[0].(type) {
	case *list.T:
		return boolean.New(c.Len() == 0)
	case *str.T:
		return boolean.New(c.String() == "")
	}

	return boolean.False
}

func length(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	switch c := v[0].(type) {
	case *list.T:
		return num.Int(c.Len())
	case *str.T:
		return num.Int(utf8.RuneCountInString(c.String()))
	}

	return num.Int(0)
}

func rest(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	if null.Is(v[0]) {
		return list.New()
	}

	l := list.To(v[0])
	if l.Len() == 0 {
		return list.New()
	}

	return array(l.Items()[1:])
}

func index(c cell.T) int {
	r := rational.Number(c)
	if !r.IsInt() || !r.Num().IsInt64() {
		panic("index must be an integer")
	}

	return int(r.Num().Int64())
}
