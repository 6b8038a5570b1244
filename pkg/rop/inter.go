package rop

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// ValueOr returns the successful value or the fallback
	ValueOr(fallback T) T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that hold a value or an error
type WithError[T, E any] interface {
	ValueProvider[T]
	// Err returns the error if operation failed
	Err() E
	// HasValue returns true if the operation was successful
	HasValue() bool
}

// From copies any WithError into a Result.
func From[T, E any](p WithError[T, E]) Result[T, E] {
	if r, ok := p.(Result[T, E]); ok {
		return r
	}
	if p.HasValue() {
		return Success[T, E](p.Value())
	}
	return Fail[T](p.Err())
}
