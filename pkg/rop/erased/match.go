package erased

import (
	"reflect"

	"github.com/ib-77/ropmatch/pkg/rop/kind"
	"github.com/ib-77/ropmatch/pkg/rop/pattern"
)

// On handles a stored value of exactly kind K.
func On[K, R any](f func(K) R) pattern.Pattern[Error, R] {
	return pattern.Pattern[Error, R]{
		Cover:   pattern.Coverage{Kinds: []reflect.Type{kind.TypeOf[K]()}},
		Accepts: Is[K],
		Apply: func(e Error) R {
			k, _ := Downcast[K](e)
			return f(k)
		},
	}
}

// OnCategory handles any stored kind declaring category c.
func OnCategory[R any](c kind.Category, f func(Error) R) pattern.Pattern[Error, R] {
	return pattern.Pattern[Error, R]{
		Cover: pattern.Coverage{Categories: []kind.Category{c}},
		Accepts: func(e Error) bool {
			return e.HasValue() && e.Category() == c
		},
		Apply: f,
	}
}

// OnEmpty handles a container holding no value, either never filled or
// already taken. Closed handler lists need it unless they have OnAny.
func OnEmpty[R any](f func() R) pattern.Pattern[Error, R] {
	return pattern.Pattern[Error, R]{
		Cover:   pattern.Coverage{Empty: true},
		Accepts: func(e Error) bool { return !e.HasValue() },
		Apply:   func(Error) R { return f() },
	}
}

// OnAny is the catch-all: it accepts every container, empty ones included,
// and receives the whole Error.
func OnAny[R any](f func(Error) R) pattern.Pattern[Error, R] {
	return pattern.Pattern[Error, R]{
		Cover:   pattern.Coverage{AnyError: true},
		Accepts: func(Error) bool { return true },
		Apply:   f,
	}
}

// Cases compiles handlers over the open set of kinds, so one of them must be OnAny.
// It panics on a non-exhaustive list.
func Cases[R any](cases ...pattern.Pattern[Error, R]) *pattern.Matcher[Error, R] {
	return pattern.MustCompile(pattern.Open(false), cases...)
}

// CasesOver compiles handlers that must cover every kind of set, exactly or by
// category, and the empty container.
func CasesOver[R any](set kind.Set, cases ...pattern.Pattern[Error, R]) *pattern.Matcher[Error, R] {
	return pattern.MustCompile(pattern.Closed(false, set), cases...)
}

// Match dispatches e to the first handler accepting it.
func Match[R any](e Error, cases ...pattern.Pattern[Error, R]) R {
	return Cases(cases...).Match(e)
}

// MatchOver is Match for a caller proving coverage of a closed kind set.
func MatchOver[R any](e Error, set kind.Set, cases ...pattern.Pattern[Error, R]) R {
	return CasesOver(set, cases...).Match(e)
}
