// Released under an MIT license. See LICENSE.

// Package num provides ensemble's exact decimal number type.
package num

import (
	"math/big"
	"strconv"

	"github.com/ensemble-lang/ensemble/internal/interface/cell"
)

const name = "number"

// T (number) wraps Go's big.Rat type.
type T big.Rat

// New creates a new number from a string. It panics if s is not a number.
func New(s string) *T {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		panic("'" + s + "' is not a valid number")
	}

	return Rat(v)
}

// Int creates a number from an int.
func Int(i int) *T {
	return Rat(new(big.Rat).SetInt64(int64(i)))
}

// Rat wraps the *big.Rat r as a number.
func Rat(r *big.Rat) *T {
	return (*T)(r)
}

// The number type is a cell.

// Equal returns true if c is the same number as the number n.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && n.Rat().Cmp(To(c).Rat()) == 0
}

// Name returns the type name for the number n.
func (n *T) Name() string {
	return name
}

// The number type is a boolean.

// Bool returns false if the number n is zero.
func (n *T) Bool() bool {
	return n.Rat().Sign() != 0
}

// The number type has a literal representation.

// Literal returns the literal representation of the number n.
func (n *T) Literal() string {
	return n.String()
}

// The number type is a rational.

// Rat returns the value of the number n as a *big.Rat.
func (n *T) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// The number type is a stringer.

// String returns the shortest decimal text for the number n.
func (n *T) String() string {
	r := n.Rat()
	if r.IsInt() {
		return r.Num().String()
	}

	if s, exact := decimal(r); exact {
		return s
	}

	f, _ := r.Float64()

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// decimal returns r as a terminating decimal when one exists.
func decimal(r *big.Rat) (string, bool) {
	d := new(big.Int).Set(r.Denom())

	two := big.NewInt(2)
	five := big.NewInt(5)
	m := new(big.Int)

	places := 0
	for _, p := range []*big.Int{two, five} {
		count := 0
		for {
			q, rem := new(big.Int).QuoRem(d, p, m)
			if rem.Sign() != 0 {
				break
			}

			d = q
			count++
		}

		if count > places {
			places = count
		}
	}

	if d.Cmp(big.NewInt(1)) != 0 {
		return "", false
	}

	return r.FloatString(places), true
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not a " + name)
}
