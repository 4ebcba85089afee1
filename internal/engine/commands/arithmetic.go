// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"

	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/rational"
	"github.com/ensemble-lang/ensemble/internal/type/num"
)

func add(args []cell.T) cell.T {
	sum := &big.Rat{}

	for _, c := range args {
		sum.Add(sum, rational.Number(c))
	}

	return num.Rat(sum)
}

func decrement(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	r := &big.Rat{}

	return num.Rat(r.Sub(rational.Number(v[0]), big.NewRat(1, 1)))
}

func divide(args []cell.T) cell.T {
	validate.Variadic(args, 2, 2)

	quotient := &big.Rat{}
	quotient.Set(rational.Number(args[0]))

	for _, c := range args[1:] {
		divisor := rational.Number(c)
		if divisor.Sign() == 0 {
			panic("division by zero")
		}

		quotient.Quo(quotient, divisor)
	}

	return num.Rat(quotient)
}

func increment(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	r := &big.Rat{}

	return num.Rat(r.Add(rational.Number(v[0]), big.NewRat(1, 1)))
}

func multiply(args []cell.T) cell.T {
	product := big.NewRat(1, 1)

	for _, c := range args {
		product.Mul(product, rational.Number(c))
	}

	return num.Rat(product)
}

// power raises a number to an integer power exactly. Other exponents
// fall back to floating point.
func power(args []cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	base := rational.Number(v[0])
	exponent := rational.Number(v[1])

	if !exponent.IsInt() || !exponent.Num().IsInt64() {
		b, _ := base.Float64()
		e, _ := exponent.Float64()

		return float(math.Pow(b, e))
	}

	n := exponent.Num().Int64()
	if n < 0 {
		if base.Sign() == 0 {
			panic("division by zero")
		}

		base = new(big.Rat).Inv(base)
		n = -n
	}

	a := new(big.Int).Exp(base.Num(), big.NewInt(n), nil)
	b := new(big.Int).Exp(base.Denom(), big.NewInt(n), nil)

	return num.Rat(new(big.Rat).SetFrac(a, b))
}

// remainder returns the remainder of truncated division, with the sign
// of the dividend.
func remainder(args []cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	dividend := rational.Number(v[0])
	divisor := rational.Number(v[1])

	if divisor.Sign() == 0 {
		panic("division by zero")
	}

	q := new(big.Rat).Quo(dividend, divisor)
	t := new(big.Int).Quo(q.Num(), q.Denom())

	r := new(big.Rat).SetInt(t)
	r.Mul(r, divisor)

	return num.Rat(r.Sub(dividend, r))
}

func subtract(args []cell.T) cell.T {
	v, rest := validate.Variadic(args, 1, 1)

	difference := &big.Rat{}
	difference.Set(rational.Number(v[0]))

	if len(rest) == 0 {
		return num.Rat(difference.Neg(difference))
	}

	for _, c := range rest {
		difference.Sub(difference, rational.Number(c))
	}

	return num.Rat(difference)
}

func float(f float64) cell.T {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic("result is not a finite number")
	}

	return num.Rat(new(big.Rat).SetFloat64(f))
}
