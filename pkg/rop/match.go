package rop

import (
	"github.com/ib-77/ropmatch/pkg/rop/erased"
	"github.com/ib-77/ropmatch/pkg/rop/kind"
	"github.com/ib-77/ropmatch/pkg/rop/pattern"
)

// OnValue handles the success variant. E is the only type argument that
// cannot be inferred: OnValue[erased.Error](func(v int) string { ... }).
func OnValue[E, T, R any](f func(T) R) pattern.Pattern[Result[T, E], R] {
	return pattern.Pattern[Result[T, E], R]{
		Cover:   pattern.Coverage{Value: true},
		Accepts: func(r Result[T, E]) bool { return r.hasValue },
		Apply:   func(r Result[T, E]) R { return f(r.value) },
	}
}

// OnErr handles every error. For an erased error type it is the catch-all
// and receives the whole erased.Error.
func OnErr[T, E, R any](f func(E) R) pattern.Pattern[Result[T, E], R] {
	return pattern.Pattern[Result[T, E], R]{
		Cover:   pattern.Coverage{AnyError: true},
		Accepts: func(r Result[T, E]) bool { return !r.hasValue },
		Apply:   func(r Result[T, E]) R { return f(r.err) },
	}
}

// OnKind handles an erased error holding exactly kind K.
func OnKind[T, K, R any](f func(K) R) pattern.Pattern[Result[T, erased.Error], R] {
	return onErased[T](erased.On(f))
}

// OnCategory handles an erased error whose kind declares category c.
func OnCategory[T, R any](c kind.Category, f func(erased.Error) R) pattern.Pattern[Result[T, erased.Error], R] {
	return onErased[T](erased.OnCategory(c, f))
}

// OnEmpty handles an erased error holding no value. CasesOver requires it
// unless an OnErr catch-all is present.
func OnEmpty[T, R any](f func() R) pattern.Pattern[Result[T, erased.Error], R] {
	return onErased[T](erased.OnEmpty(f))
}

func onErased[T, R any](p pattern.Pattern[erased.Error, R]) pattern.Pattern[Result[T, erased.Error], R] {
	return pattern.Pattern[Result[T, erased.Error], R]{
		Cover: p.Cover,
		Accepts: func(r Result[T, erased.Error]) bool {
			return !r.hasValue && p.Accepts(r.err)
		},
		Apply: func(r Result[T, erased.Error]) R { return p.Apply(r.err) },
	}
}

// Cases compiles handlers that must cover the success variant and every error.
// It panics on a non-exhaustive list.
func Cases[T, E, R any](cases ...pattern.Pattern[Result[T, E], R]) *pattern.Matcher[Result[T, E], R] {
	return pattern.MustCompile(pattern.Open(true), cases...)
}

// CasesOver compiles handlers for an erased result whose error kinds are
// known to be drawn from set.
func CasesOver[T, R any](set kind.Set, cases ...pattern.Pattern[Result[T, erased.Error], R]) *pattern.Matcher[Result[T, erased.Error], R] {
	return pattern.MustCompile(pattern.Closed(true, set), cases...)
}

// Match dispatches r to the first handler accepting it, in declaration order.
func Match[T, E, R any](r Result[T, E], cases ...pattern.Pattern[Result[T, E], R]) R {
	return Cases(cases...).Match(r)
}

func MatchOver[T, R any](r Result[T, erased.Error], set kind.Set, cases ...pattern.Pattern[Result[T, erased.Error], R]) R {
	return CasesOver(set, cases...).Match(r)
}
