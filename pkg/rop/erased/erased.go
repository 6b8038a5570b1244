package erased

import (
	"fmt"
	"reflect"

	"github.com/ib-77/ropmatch/pkg/rop/kind"
)

type state uint8

const (
	empty state = iota
	holds
	taken
)

// Error holds zero or one value of any kind with its concrete type erased.
// The zero value is an empty container.
type Error struct {
	value any
	state state
}

// New stores v by value. A nil v, or a typed nil pointer, gives an empty
// container; an Error is returned unchanged instead of being nested.
func New(v any) Error {
	switch x := v.(type) {
	case Error:
		return x
	case *Error:
		if x == nil {
			return Error{}
		}
		return *x
	}

	if v == nil {
		return Error{}
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Error{}
	}
	return Error{value: v, state: holds}
}

func (e Error) HasValue() bool {
	return e.state == holds
}

// Taken reports whether the stored value was moved out by Take.
func (e Error) Taken() bool {
	return e.state == taken
}

// Kind returns the identity of the stored kind, nil when nothing is stored.
func (e Error) Kind() reflect.Type {
	if e.state != holds {
		return nil
	}
	return reflect.TypeOf(e.value)
}

func (e Error) Category() kind.Category {
	if e.state != holds {
		return kind.Uncategorized
	}
	return kind.CategoryOf(e.value)
}

// Value returns the stored value as any, nil when nothing is stored.
func (e Error) Value() any {
	if e.state != holds {
		return nil
	}
	return e.value
}

func (e Error) Error() string {
	switch e.state {
	case empty:
		return "empty error"
	case taken:
		return "taken error"
	}
	if err, ok := e.value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%T: %v", e.value, e.value)
}

// Unwrap exposes the stored value to errors.Is and errors.As when it is an error.
func (e Error) Unwrap() error {
	if e.state != holds {
		return nil
	}
	err, _ := e.value.(error)
	return err
}

// Is reports whether e stores a value of exactly kind K.
func Is[K any](e Error) bool {
	return e.state == holds && reflect.TypeOf(e.value) == reflect.TypeFor[K]()
}

// Downcast returns a copy of the stored value when it is exactly of kind K.
// Kinds sharing a category never convert into each other.
func Downcast[K any](e Error) (K, bool) {
	if !Is[K](e) {
		var zero K
		return zero, false
	}
	return e.value.(K), true
}

// Take moves the stored value out when it is exactly of kind K.
// On success e no longer holds a value; on a kind mismatch e is untouched.
func Take[K any](e *Error) (K, bool) {
	k, ok := Downcast[K](*e)
	if !ok {
		return k, false
	}
	e.value = nil
	e.state = taken
	return k, true
}
