package custom

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/core"
	"github.com/ib-77/ropmatch/pkg/rop/erased"
	"github.com/ib-77/ropmatch/pkg/rop/kind"
)

func doubling(ctx context.Context, input rop.Result[int, erased.Error]) <-chan rop.Result[int, erased.Error] {
	output := make(chan rop.Result[int, erased.Error], 1)
	if input.IsSuccess() {
		output <- rop.Success[int, erased.Error](input.Value() * 2)
	} else {
		output <- input
	}
	close(output)
	return output
}

// stuck never delivers a result, so only cancellation moves the pipeline on.
func stuck(ctx context.Context, input rop.Result[int, erased.Error]) <-chan rop.Result[int, erased.Error] {
	return make(chan rop.Result[int, erased.Error])
}

func queued(results ...rop.Result[int, erased.Error]) <-chan rop.Result[int, erased.Error] {
	in := make(chan rop.Result[int, erased.Error], len(results))
	for _, r := range results {
		in <- r
	}
	close(in)
	return in
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestRun_WithHandlers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var mu sync.Mutex
	successCount := 0

	onSuccess := func(ctx context.Context, in rop.Result[int, erased.Error]) {
		mu.Lock()
		defer mu.Unlock()
		successCount++
	}

	out := Collect(Run(ctx, core.ToChanManyResults[int, erased.Error](ctx, []int{1, 2, 3, 4, 5}),
		doubling, CancelHandlers[int, int](), onSuccess, 2))

	values := make([]int, 0, len(out))
	for _, r := range out {
		values = append(values, r.Value())
	}
	assert.ElementsMatch(t, []int{2, 4, 6, 8, 10}, values)
	assert.Equal(t, 5, successCount)
}

func TestRunSingle_CancelledBeforeProcessing(t *testing.T) {
	t.Parallel()

	ctx := cancelledContext()
	out := Collect(RunSingle(ctx,
		queued(
			rop.Success[int, erased.Error](1),
			rop.FailWith[int](kind.Length{}),
			rop.Success[int, erased.Error](3)),
		stuck, CancelHandlers[int, int](), nil))

	require.Len(t, out, 3, "every queued result is accounted for")

	lengths, cancels := 0, 0
	for _, r := range out {
		require.True(t, r.IsFailure())
		switch {
		case erased.Is[kind.Length](r.Err()):
			lengths++
		case erased.Is[Cancelled](r.Err()):
			cancels++
			assert.ErrorIs(t, r.Err(), context.Canceled)
		}
	}
	assert.Equal(t, 1, lengths, "a failed input keeps its own error")
	assert.Equal(t, 2, cancels)
}

func TestTurnout_CancelKeepsEveryResult(t *testing.T) {
	t.Parallel()

	ctx := cancelledContext()
	out := Collect(Turnout(ctx,
		queued(
			rop.Success[int, erased.Error](1),
			rop.Success[int, erased.Error](2),
			rop.Success[int, erased.Error](3),
			rop.Success[int, erased.Error](4)),
		doubling, CancelHandlers[int, int](), nil, 2))

	require.Len(t, out, 4)
	for _, r := range out {
		if r.IsSuccess() {
			assert.Contains(t, []int{2, 4, 6, 8}, r.Value())
			continue
		}
		assert.True(t, erased.Is[Cancelled](r.Err()))
	}
}

func TestCancelHandlers_ProcessRemainingDisabled(t *testing.T) {
	t.Parallel()

	ctx := core.WithProcessOptions(cancelledContext(), false)
	assert.False(t, core.IsProcessRemainingEnabled(ctx, true))

	out := Collect(RunSingle(ctx,
		queued(rop.Success[int, erased.Error](1), rop.Success[int, erased.Error](2)),
		stuck, CancelHandlers[int, int](), nil))
	assert.Empty(t, out)
}

func TestCancelled_Kind(t *testing.T) {
	t.Parallel()

	cause := errors.New("shutdown")
	r := rop.FailWith[int](Cancelled{Cause: cause})

	assert.Equal(t, kind.RuntimeErrorCategory, r.Err().Category())
	assert.ErrorIs(t, r.Err(), cause)
	assert.Equal(t, "operation cancelled: shutdown", r.Err().Error())
	assert.Equal(t, "operation cancelled", Cancelled{}.Error())

	got := rop.Match(r,
		rop.OnValue[erased.Error](func(int) string { return "value" }),
		rop.OnKind[int](func(c Cancelled) string { return "cancelled" }),
		rop.OnErr[int](func(erased.Error) string { return "other" }),
	)
	assert.Equal(t, "cancelled", got)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)

	assert.Equal(t, []string{"a", "b"}, Collect(ch))
}

func TestRun_CancelAcrossWorkers(t *testing.T) {
	t.Parallel()

	const n = 40
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := make([]rop.Result[int, erased.Error], 0, n)
	for i := 1; i <= n; i++ {
		input = append(input, rop.Success[int, erased.Error](i))
	}

	cancelling := func(ctx context.Context, in rop.Result[int, erased.Error]) <-chan rop.Result[int, erased.Error] {
		if in.Value() == 5 {
			cancel()
		}
		return doubling(ctx, in)
	}

	out := Collect(Run(ctx, queued(input...), cancelling, CancelHandlers[int, int](), nil, 4))
	require.Len(t, out, n, "every input comes out exactly once")

	seen := make(map[int]bool)
	cancels := 0
	for _, r := range out {
		if r.IsFailure() {
			require.True(t, erased.Is[Cancelled](r.Err()))
			cancels++
			continue
		}
		v := r.Value()
		assert.True(t, v%2 == 0 && v >= 2 && v <= 2*n, "unexpected value %d", v)
		assert.False(t, seen[v], "value %d delivered twice", v)
		seen[v] = true
	}
	assert.Equal(t, n, len(seen)+cancels)
	assert.Positive(t, cancels, "the queued tail is failed, not dropped")
}

func TestRun_CancelAcrossWorkers_FailedInputsKeepIdentity(t *testing.T) {
	t.Parallel()

	input := make([]rop.Result[int, erased.Error], 0, 12)
	for i := 0; i < 12; i++ {
		input = append(input, rop.FailWith[int](kind.OutOfRange{}))
	}

	out := Collect(Run(cancelledContext(), queued(input...), stuck, CancelHandlers[int, int](), nil, 3))
	require.Len(t, out, len(input))

	ids := make(map[uuid.UUID]int)
	for _, r := range out {
		require.True(t, erased.Is[kind.OutOfRange](r.Err()))
		ids[r.Id()]++
	}
	for _, in := range input {
		assert.Equal(t, 1, ids[in.Id()], "input %s", in.Id())
	}
}
