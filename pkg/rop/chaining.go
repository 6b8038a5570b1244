package rop

import "github.com/ib-77/ropmatch/pkg/rop/erased"

// FailWith builds a failed result around any kind value.
func FailWith[T any](kindValue any) Result[T, erased.Error] {
	return Fail[T](erased.New(kindValue))
}

// FromTuple converts the (value, error) convention into a result.
func FromTuple[T any](v T, err error) Result[T, erased.Error] {
	if err != nil {
		return FailWith[T](err)
	}
	return Success[T, erased.Error](v)
}

// AndThen applies f to the success value and returns its result.
// A failed r is returned unchanged and f is not called.
func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	if r.hasValue {
		return f(r.value)
	}
	return r
}

// OrElse applies f to the error, allowing recovery or a new error.
// A successful r is returned unchanged and f is not called.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.hasValue {
		return r
	}
	return f(r.err)
}

// FlatMap is AndThen with a change of success type.
func FlatMap[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.hasValue {
		return f(r.value)
	}
	return FailFrom[T, U](r)
}

func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.hasValue {
		return Success[U, E](f(r.value))
	}
	return FailFrom[T, U](r)
}

// MapErr transforms the error, keeping id and creation time.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	mustDiffer[T, F]()
	if r.hasValue {
		return Result[T, F]{
			value:     r.value,
			hasValue:  true,
			taken:     r.taken,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return Result[T, F]{
		err:       f(r.err),
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// Recover is OrElse with a change of error type.
func Recover[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.hasValue {
		return MapErr(r, func(E) F {
			var zero F
			return zero
		})
	}
	return f(r.err)
}
