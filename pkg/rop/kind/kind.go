package kind

import (
	"reflect"
	"strings"
)

type Category int

const (
	Uncategorized Category = iota
	LogicErrorCategory
	RuntimeErrorCategory
)

func (c Category) String() string {
	switch c {
	case LogicErrorCategory:
		return "logic"
	case RuntimeErrorCategory:
		return "runtime"
	default:
		return "uncategorized"
	}
}

// Categorized is implemented by kinds that declare the category they belong to.
type Categorized interface {
	Category() Category
}

// InvalidArgument signals an unsupported selector or operator.
type InvalidArgument struct{}

func (InvalidArgument) Error() string      { return "invalid argument" }
func (InvalidArgument) Category() Category { return LogicErrorCategory }

// Length is reserved for producers that validate sizes.
type Length struct{}

func (Length) Error() string      { return "length error" }
func (Length) Category() Category { return LogicErrorCategory }

// OutOfRange signals an input argument outside the accepted domain.
type OutOfRange struct{}

func (OutOfRange) Error() string      { return "argument out of range" }
func (OutOfRange) Category() Category { return LogicErrorCategory }

type DivideByZero struct{}

func (DivideByZero) Error() string      { return "divide by zero" }
func (DivideByZero) Category() Category { return LogicErrorCategory }

// Range signals a computed result outside the accepted output domain.
type Range struct{}

func (Range) Error() string      { return "result out of range" }
func (Range) Category() Category { return RuntimeErrorCategory }

// Overflow is reserved for producers of numeric overflow.
type Overflow struct{}

func (Overflow) Error() string      { return "overflow" }
func (Overflow) Category() Category { return RuntimeErrorCategory }

// TypeOf returns the identity of kind K.
func TypeOf[K any]() reflect.Type {
	return reflect.TypeFor[K]()
}

// Of returns the identity of the kind stored in v, nil for a nil v.
func Of(v any) reflect.Type {
	return reflect.TypeOf(v)
}

// CategoryOf returns the declared category of v or Uncategorized.
func CategoryOf(v any) Category {
	if c, ok := v.(Categorized); ok {
		return c.Category()
	}
	return Uncategorized
}

// CategoryOfType returns the declared category of kind t.
func CategoryOfType(t reflect.Type) Category {
	if t == nil {
		return Uncategorized
	}
	if t.Kind() == reflect.Pointer {
		return CategoryOf(reflect.New(t.Elem()).Interface())
	}
	return CategoryOf(reflect.Zero(t).Interface())
}

// Set is a closed, ordered collection of kinds. Duplicates are dropped.
type Set struct {
	types []reflect.Type
}

// NewSet builds a set from sample values of each kind, e.g. NewSet(Range{}, Overflow{}).
func NewSet(kinds ...any) Set {
	s := Set{types: make([]reflect.Type, 0, len(kinds))}
	for _, k := range kinds {
		t := reflect.TypeOf(k)
		if t == nil || s.Contains(t) {
			continue
		}
		s.types = append(s.types, t)
	}
	return s
}

func (s Set) Contains(t reflect.Type) bool {
	for _, known := range s.types {
		if known == t {
			return true
		}
	}
	return false
}

func (s Set) Len() int {
	return len(s.types)
}

// Types returns a copy of the set members in insertion order.
func (s Set) Types() []reflect.Type {
	out := make([]reflect.Type, len(s.types))
	copy(out, s.types)
	return out
}

// With returns a new set extended by the given kinds.
func (s Set) With(kinds ...any) Set {
	all := make([]any, 0, len(s.types)+len(kinds))
	for _, t := range s.types {
		all = append(all, reflect.Zero(t).Interface())
	}
	return NewSet(append(all, kinds...)...)
}

func (s Set) String() string {
	names := make([]string, 0, len(s.types))
	for _, t := range s.types {
		names = append(names, t.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Builtin holds every kind declared in this package.
var Builtin = NewSet(
	InvalidArgument{},
	Length{},
	OutOfRange{},
	DivideByZero{},
	Range{},
	Overflow{},
)
