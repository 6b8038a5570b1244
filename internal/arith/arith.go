// Package arith is a small producer of erased results used by the
// arithmetic command and its tests.
package arith

import (
	"golang.org/x/exp/constraints"

	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/erased"
	"github.com/ib-77/ropmatch/pkg/rop/kind"
)

// Limit is the upper bound of the domain accepted by Arithmetic.
const Limit = 1_000_000

type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic applies op to x and y on the domain [0, Limit].
//
// Operands outside the domain fail with kind.OutOfRange, an operator other
// than + - * / fails with kind.InvalidArgument, a zero divisor fails with
// kind.DivideByZero. A result outside the domain, or one an integer T cannot
// hold, fails with kind.Range.
func Arithmetic[T Number](op rune, x, y T) rop.Result[T, erased.Error] {
	fx, fy := float64(x), float64(y)
	if !inDomain(fx) || !inDomain(fy) {
		return rop.FailWith[T](kind.OutOfRange{})
	}

	// exact is the result computed wide enough for any operands in the domain.
	var res T
	var exact float64
	switch op {
	case '+':
		res, exact = x+y, fx+fy
	case '-':
		res, exact = x-y, fx-fy
	case '*':
		res, exact = x*y, fx*fy
	case '/':
		if y == 0 {
			return rop.FailWith[T](kind.DivideByZero{})
		}
		res = x / y
		exact = float64(res)
	default:
		return rop.FailWith[T](kind.InvalidArgument{})
	}

	if !inDomain(exact) || (!isFloat[T]() && float64(res) != exact) {
		return rop.FailWith[T](kind.Range{})
	}
	return rop.Success[T, erased.Error](res)
}

func inDomain(v float64) bool {
	return v >= 0 && v <= Limit
}

func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

// Step adapts Arithmetic to AndThen: the current value becomes x.
func Step[T Number](op rune, y T) func(T) rop.Result[T, erased.Error] {
	return func(x T) rop.Result[T, erased.Error] {
		return Arithmetic(op, x, y)
	}
}

// Retry adapts Arithmetic to OrElse: the error is dropped and op is tried
// on fresh operands.
func Retry[T Number](op rune, x, y T) func(erased.Error) rop.Result[T, erased.Error] {
	return func(erased.Error) rop.Result[T, erased.Error] {
		return Arithmetic(op, x, y)
	}
}

// Describe renders the outcome of an arithmetic result. Runtime kinds not
// handled explicitly fall back to their category.
func Describe[T Number](r rop.Result[T, erased.Error]) string {
	return describer[T]().Match(r)
}
