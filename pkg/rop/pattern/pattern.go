package pattern

import (
	"reflect"
	"strings"

	"github.com/zeebo/errs"

	"github.com/ib-77/ropmatch/pkg/rop/kind"
)

var (
	// NotExhaustive classifies handler lists that leave a case uncovered.
	NotExhaustive = errs.Class("match not exhaustive")
	// Unmatched classifies a subject that no compiled pattern accepted.
	Unmatched = errs.Class("match unmatched")
	// Malformed classifies patterns built without an accept or apply function.
	Malformed = errs.Class("match malformed")
)

// Coverage describes what a single pattern is able to accept.
type Coverage struct {
	Value      bool // accepts every success subject
	AnyError   bool // accepts every error subject
	Empty      bool // accepts an error subject carrying no kind
	Kinds      []reflect.Type
	Categories []kind.Category
}

// Space describes what a handler list has to cover.
// A nil Kinds means the set of error kinds is open, so only a catch-all covers it.
// A closed space also has to cover errors that carry no kind at all.
type Space struct {
	Value bool
	Kinds *kind.Set
}

// Open returns a space with an open error side.
func Open(withValue bool) Space {
	return Space{Value: withValue}
}

// Closed returns a space whose error side is exactly the kinds in set.
func Closed(withValue bool, set kind.Set) Space {
	return Space{Value: withValue, Kinds: &set}
}

type Pattern[S, R any] struct {
	Cover   Coverage
	Accepts func(S) bool
	Apply   func(S) R
}

// Exhaustive reports whether covers together accept every case of space.
func Exhaustive(space Space, covers ...Coverage) error {
	var value, anyError, empty bool
	kinds := make(map[reflect.Type]struct{})
	categories := make(map[kind.Category]struct{})

	for _, c := range covers {
		value = value || c.Value
		anyError = anyError || c.AnyError
		empty = empty || c.Empty
		for _, k := range c.Kinds {
			kinds[k] = struct{}{}
		}
		for _, cat := range c.Categories {
			categories[cat] = struct{}{}
		}
	}

	var missing []string
	if space.Value && !value {
		missing = append(missing, "success")
	}

	if !anyError {
		if space.Kinds == nil {
			missing = append(missing, "error catch-all")
		} else {
			if !empty {
				missing = append(missing, "empty error")
			}
			for _, t := range space.Kinds.Types() {
				if _, ok := kinds[t]; ok {
					continue
				}
				if _, ok := categories[kind.CategoryOfType(t)]; ok {
					continue
				}
				missing = append(missing, t.String())
			}
		}
	}

	if len(missing) > 0 {
		return NotExhaustive.New("uncovered %s", strings.Join(missing, ", "))
	}
	return nil
}

// Select returns the index of the first pattern accepting subject, or -1.
// Declaration order decides: a general pattern declared before a specific one wins.
func Select[S, R any](subject S, patterns []Pattern[S, R]) int {
	for i, p := range patterns {
		if p.Accepts(subject) {
			return i
		}
	}
	return -1
}

// Matcher is a validated, reusable handler list.
type Matcher[S, R any] struct {
	space    Space
	patterns []Pattern[S, R]
}

func Compile[S, R any](space Space, patterns ...Pattern[S, R]) (*Matcher[S, R], error) {
	covers := make([]Coverage, 0, len(patterns))
	for i, p := range patterns {
		if p.Accepts == nil || p.Apply == nil {
			return nil, Malformed.New("pattern %d has no accept or apply function", i)
		}
		covers = append(covers, p.Cover)
	}

	if err := Exhaustive(space, covers...); err != nil {
		return nil, err
	}

	return &Matcher[S, R]{
		space:    space,
		patterns: append([]Pattern[S, R](nil), patterns...),
	}, nil
}

// MustCompile is like Compile but panics when the handler list is not exhaustive.
func MustCompile[S, R any](space Space, patterns ...Pattern[S, R]) *Matcher[S, R] {
	m, err := Compile(space, patterns...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Matcher[S, R]) Len() int {
	return len(m.patterns)
}

func (m *Matcher[S, R]) Space() Space {
	return m.space
}

// Selected returns the index of the pattern that Match would invoke for subject.
func (m *Matcher[S, R]) Selected(subject S) int {
	return Select(subject, m.patterns)
}

// Match invokes the first pattern accepting subject.
// It panics if none does, which a compiled matcher only allows for a kind
// outside its closed space.
func (m *Matcher[S, R]) Match(subject S) R {
	i := Select(subject, m.patterns)
	if i < 0 {
		panic(Unmatched.New("no pattern accepts %T", subject))
	}
	return m.patterns[i].Apply(subject)
}
