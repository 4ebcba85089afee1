// Released under an MIT license. See LICENSE.

// Package host provides the global objects that dot paths such as
// Math.floor or console.log resolve to when code is read.
package host

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"strings"

	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/rational"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
	"github.com/ensemble-lang/ensemble/internal/type/hash"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/native"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/num"
	"github.com/ensemble-lang/ensemble/internal/type/str"
)

// T (host) is the root of the global object tree.
type T struct {
	global *hash.T
}

// New creates the global object tree. Console output goes to out.
func New(out io.Writer) *T {
	g := hash.New()

	g.Set("Math", object(
		value("E", float(math.E)),
		value("PI", float(math.Pi)),
		fn("abs", abs),
		fn("ceil", ceil),
		fn("floor", floor),
		fn("max", extreme(1)),
		fn("min", extreme(-1)),
		fn("round", round),
		fn("sign", sign),
		fn("sqrt", sqrt),
		fn("trunc", trunc),
	))

	g.Set("console", object(
		fn("error", printer(os.Stderr)),
		fn("log", printer(out)),
	))

	g.Set("JSON", object(
		fn("parse", parse),
		fn("stringify", stringify),
	))

	g.Set("Number", object(
		fn("isInteger", isInteger),
		fn("parseFloat", parseFloat),
	))

	g.Set("String", object(
		fn("includes", includes),
		fn("split", split),
		fn("toLowerCase", text(strings.ToLower)),
		fn("toUpperCase", text(strings.ToUpper)),
		fn("trim", text(strings.TrimSpace)),
	))

	return &T{global: g}
}

// Lookup resolves a dot-separated path. Every segment must exist.
func (h *T) Lookup(path string) (cell.T, bool) {
	var c cell.T = h.global

	for _, k := range strings.Split(path, ".") {
		o, ok := c.(*hash.T)
		if !ok {
			return nil, false
		}

		c, ok = o.Get(k)
		if !ok {
			return nil, false
		}
	}

	return c, true
}

type member struct {
	key   string
	value cell.T
}

func fn(k string, f func([]cell.T) cell.T) member {
	return member{k, native.Func(k, f)}
}

func object(ms ...member) *hash.T {
	h := hash.New()
	for _, m := range ms {
		h.Set(m.key, m.value)
	}

	return h
}

func value(k string, v cell.T) member {
	return member{k, v}
}

// Math.

func abs(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(new(big.Rat).Abs(rational.Number(v[0])))
}

func ceil(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	r := new(big.Rat).Neg(rational.Number(v[0]))

	return num.Rat(new(big.Rat).Neg(floorRat(r)))
}

func extreme(want int) func([]cell.T) cell.T {
	return func(args []cell.T) cell.T {
		validate.Variadic(args, 1, 1)

		best := rational.Number(args[0])
		for _, c := range args[1:] {
			if r := rational.Number(c); r.Cmp(best) == want {
				best = r
			}
		}

		return num.Rat(new(big.Rat).Set(best))
	}
}

func float(f float64) cell.T {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic("result is not a finite number")
	}

	return num.Rat(new(big.Rat).SetFloat64(f))
}

func floor(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(floorRat(rational.Number(v[0])))
}

// floorRat relies on big.Rat keeping its denominator positive, which
// makes Euclidean division the same as flooring.
func floorRat(r *big.Rat) *big.Rat {
	q := new(big.Int).Div(r.Num(), r.Denom())

	return new(big.Rat).SetInt(q)
}

func round(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	r := new(big.Rat).Add(rational.Number(v[0]), big.NewRat(1, 2))

	return num.Rat(floorRat(r))
}

func sign(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return num.Int(rational.Number(v[0]).Sign())
}

func sqrt(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	r := rational.Number(v[0])
	if r.Sign() < 0 {
		panic("square root of a negative number")
	}

	f, _ := r.Float64()

	return float(math.Sqrt(f))
}

func trunc(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	r := rational.Number(v[0])

	return num.Rat(new(big.Rat).SetInt(new(big.Int).Quo(r.Num(), r.Denom())))
}

// console.

func printer(w io.Writer) func([]cell.T) cell.T {
	return func(args []cell.T) cell.T {
		s := make([]string, len(args))
		for i, c := range args {
			s[i] = common.String(c)
		}

		fmt.Fprintln(w, strings.Join(s, " "))

		return null.Null
	}
}

// Number.

func isInteger(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	if !num.Is(v[0]) {
		return boolean.False
	}

	return boolean.New(num.To(v[0]).Rat().IsInt())
}

func parseFloat(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	s := strings.TrimSpace(common.String(v[0]))

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("'" + s + "' is not a number")
	}

	return num.Rat(r)
}

// String.

func includes(args []cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return boolean.New(strings.Contains(common.String(v[0]), common.String(v[1])))
}

func split(args []cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	parts := strings.Split(common.String(v[0]), common.String(v[1]))

	items := make([]cell.T, len(parts))
	for i, p := range parts {
		items[i] = str.New(p)
	}

	return list.New(items...)
}

func text(f func(string) string) func([]cell.T) cell.T {
	return func(args []cell.T) cell.T {
		v := validate.Fixed(args, 1, 1)

		return str.New(f(common.String(v[0])))
	}
}
