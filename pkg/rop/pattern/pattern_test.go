package pattern

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropmatch/pkg/rop/kind"
)

func even(r string) Pattern[int, string] {
	return Pattern[int, string]{
		Cover:   Coverage{Kinds: []reflect.Type{kind.TypeOf[kind.Range]()}},
		Accepts: func(i int) bool { return i%2 == 0 },
		Apply:   func(int) string { return r },
	}
}

func zero(r string) Pattern[int, string] {
	return Pattern[int, string]{
		Cover:   Coverage{Empty: true},
		Accepts: func(i int) bool { return i == 0 },
		Apply:   func(int) string { return r },
	}
}

func catchAll(r string) Pattern[int, string] {
	return Pattern[int, string]{
		Cover:   Coverage{Value: true, AnyError: true},
		Accepts: func(int) bool { return true },
		Apply:   func(int) string { return r },
	}
}

func TestExhaustive_OpenSpaceNeedsCatchAll(t *testing.T) {
	t.Parallel()

	err := Exhaustive(Open(false), Coverage{Kinds: []reflect.Type{kind.TypeOf[kind.Range]()}})
	require.Error(t, err)
	assert.True(t, NotExhaustive.Has(err))
	assert.Contains(t, err.Error(), "error catch-all")

	assert.NoError(t, Exhaustive(Open(false), Coverage{AnyError: true}))
}

func TestExhaustive_ValueSide(t *testing.T) {
	t.Parallel()

	err := Exhaustive(Open(true), Coverage{AnyError: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "success")

	assert.NoError(t, Exhaustive(Open(true), Coverage{AnyError: true}, Coverage{Value: true}))
}

func TestExhaustive_ClosedSpace(t *testing.T) {
	t.Parallel()

	set := kind.NewSet(kind.Range{}, kind.Overflow{}, kind.DivideByZero{})

	err := Exhaustive(Closed(false, set),
		Coverage{Kinds: []reflect.Type{kind.TypeOf[kind.Range]()}},
		Coverage{Kinds: []reflect.Type{kind.TypeOf[kind.Overflow]()}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind.DivideByZero")
	assert.NotContains(t, err.Error(), "kind.Range")

	// categories cover every member declaring them
	assert.NoError(t, Exhaustive(Closed(false, set),
		Coverage{Categories: []kind.Category{kind.RuntimeErrorCategory}},
		Coverage{Kinds: []reflect.Type{kind.TypeOf[kind.DivideByZero]()}},
		Coverage{Empty: true}))

	// a catch-all always covers a closed space
	assert.NoError(t, Exhaustive(Closed(false, set), Coverage{AnyError: true}))

	// a closed space without members still has the empty error
	assert.NoError(t, Exhaustive(Closed(false, kind.NewSet()), Coverage{Empty: true}))
}

func TestExhaustive_ClosedSpaceNeedsEmptyHandler(t *testing.T) {
	t.Parallel()

	set := kind.NewSet(kind.Range{})

	err := Exhaustive(Closed(true, set),
		Coverage{Value: true},
		Coverage{Kinds: []reflect.Type{kind.TypeOf[kind.Range]()}})
	require.Error(t, err)
	assert.True(t, NotExhaustive.Has(err))
	assert.Contains(t, err.Error(), "empty error")
	assert.NotContains(t, err.Error(), "kind.Range")

	err = Exhaustive(Closed(false, kind.NewSet()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty error")

	// the open space only asks for the catch-all, which covers empty errors too
	err = Exhaustive(Open(false), Coverage{Empty: true})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "empty error")
}

func TestSelect_FirstAcceptingWins(t *testing.T) {
	t.Parallel()

	patterns := []Pattern[int, string]{even("even"), catchAll("any")}
	assert.Equal(t, 0, Select(2, patterns))
	assert.Equal(t, 1, Select(3, patterns))

	// a general pattern declared first absorbs everything
	patterns = []Pattern[int, string]{catchAll("any"), even("even")}
	assert.Equal(t, 0, Select(2, patterns))

	assert.Equal(t, -1, Select(3, []Pattern[int, string]{even("even")}))
}

func TestCompile_RejectsNonExhaustive(t *testing.T) {
	t.Parallel()

	m, err := Compile(Open(false), even("even"))
	assert.Nil(t, m)
	assert.True(t, NotExhaustive.Has(err))

	assert.Panics(t, func() { MustCompile(Open(false), even("even")) })
}

func TestCompile_RejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Compile(Open(false), Pattern[int, string]{Cover: Coverage{AnyError: true}})
	assert.True(t, Malformed.Has(err))
}

func TestMatcher_Match(t *testing.T) {
	t.Parallel()

	m := MustCompile(Open(true), even("even"), catchAll("odd"))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Space().Value)
	assert.Equal(t, "even", m.Match(4))
	assert.Equal(t, "odd", m.Match(5))
	assert.Equal(t, 0, m.Selected(4))
	assert.Equal(t, 1, m.Selected(5))
}

func TestMatcher_UnmatchedPanics(t *testing.T) {
	t.Parallel()

	m := MustCompile(Closed(false, kind.NewSet(kind.Range{})), zero("zero"), even("even"))
	assert.Equal(t, "zero", m.Match(0))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, Unmatched.Has(err))
	}()
	m.Match(1)
}

func TestMatcher_CopiesPatterns(t *testing.T) {
	t.Parallel()

	patterns := []Pattern[int, string]{even("even"), catchAll("any")}
	m := MustCompile(Open(false), patterns...)
	patterns[0] = catchAll("replaced")
	assert.Equal(t, "even", m.Match(2))
}
