package rop

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/errs"
)

// Error classifies contract violations: reading the wrong variant or
// building a result whose success and error types coincide.
var Error = errs.Class("rop")

// Result holds exactly one of a success value T or an error E.
// The tag is fixed at construction; moving the payload out never changes it.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	hasValue  bool
	taken     bool
}

var _ WithError[int, string] = Result[int, string]{}

func mustDiffer[T, E any]() {
	if t := reflect.TypeFor[T](); t == reflect.TypeFor[E]() {
		panic(Error.New("success and error types must differ, both are %s", t))
	}
}

func Success[T, E any](v T) Result[T, E] {
	mustDiffer[T, E]()
	return Result[T, E]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	mustDiffer[T, E]()
	return Result[T, E]{
		err:       err,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries the error, id and creation time of a failed result into a
// result of another success type. It panics when from holds a value.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	mustDiffer[Out, E]()
	if from.hasValue {
		panic(Error.New("FailFrom called on a successful result"))
	}
	return Result[Out, E]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) HasValue() bool {
	return r.hasValue
}

func (r Result[T, E]) IsSuccess() bool {
	return r.hasValue
}

func (r Result[T, E]) IsFailure() bool {
	return !r.hasValue
}

// IsTaken reports whether the payload was moved out by one of the Take methods.
func (r Result[T, E]) IsTaken() bool {
	return r.taken
}

// Value returns the success value. Calling it on a failed result is a
// programming error and panics.
func (r Result[T, E]) Value() T {
	if !r.hasValue {
		panic(Error.New("value accessed on a failed result"))
	}
	return r.value
}

// Err returns the error. Calling it on a successful result panics.
func (r Result[T, E]) Err() E {
	if r.hasValue {
		panic(Error.New("error accessed on a successful result"))
	}
	return r.err
}

// ValueOr returns the success value, or fallback for a failed result.
// After TakeValue it returns the emptied payload, not fallback.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.hasValue {
		return r.value
	}
	return fallback
}

// Get returns both payloads and whether r holds a value; the absent one is
// its zero value.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.hasValue
}

// TakeValue moves the success value out, leaving T's zero value behind.
func (r *Result[T, E]) TakeValue() T {
	v := r.Value()
	var zero T
	r.value = zero
	r.taken = true
	return v
}

// TakeValueOr is the move-out form of ValueOr.
func (r *Result[T, E]) TakeValueOr(fallback T) T {
	if r.hasValue {
		return r.TakeValue()
	}
	return fallback
}

// TakeErr moves the error out, leaving E's zero value behind.
func (r *Result[T, E]) TakeErr() E {
	e := r.Err()
	var zero E
	r.err = zero
	r.taken = true
	return e
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
