package custom

import (
	"context"
	"fmt"

	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/core"
	"github.com/ib-77/ropmatch/pkg/rop/erased"
	"github.com/ib-77/ropmatch/pkg/rop/kind"
)

// Cancelled is the error kind of results a pipeline gave up on.
type Cancelled struct {
	Cause error
}

func (c Cancelled) Error() string {
	if c.Cause == nil {
		return "operation cancelled"
	}
	return fmt.Sprintf("operation cancelled: %v", c.Cause)
}

func (c Cancelled) Unwrap() error         { return c.Cause }
func (Cancelled) Category() kind.Category { return kind.RuntimeErrorCategory }

func cancelled[In, Out any](ctx context.Context, in rop.Result[In, erased.Error]) rop.Result[Out, erased.Error] {
	if in.IsFailure() {
		return rop.FailFrom[In, Out](in)
	}
	return rop.FailWith[Out](Cancelled{Cause: context.Cause(ctx)})
}

// CancelRemainingResults drains inputCh, failing every successful result
// with Cancelled. Failed inputs keep their own error.
func CancelRemainingResults[In, Out any](ctx context.Context,
	inputCh <-chan rop.Result[In, erased.Error], outCh chan<- rop.Result[Out, erased.Error]) {

	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}

	for in := range inputCh {
		outCh <- cancelled[In, Out](ctx, in)
	}
}

func CancelRemainingResult[In, Out any](ctx context.Context, in rop.Result[In, erased.Error],
	outCh chan<- rop.Result[Out, erased.Error]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- cancelled[In, Out](ctx, in)
	}
}

// KeepProcessed forwards a result that finished before cancellation was seen.
func KeepProcessed[In, Out, E any](ctx context.Context, _ rop.Result[In, E],
	processed rop.Result[Out, E], outCh chan<- rop.Result[Out, E]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}

// CancelHandlers routes every result a cancelled pipeline still holds to
// its output: queued and unprocessed results fail with Cancelled, processed
// ones are kept.
func CancelHandlers[In, Out any]() core.CancellationHandlers[In, Out, erased.Error] {
	return core.CancellationHandlers[In, Out, erased.Error]{
		OnCancel:            CancelRemainingResults[In, Out],
		OnCancelUnprocessed: CancelRemainingResult[In, Out],
		OnCancelProcessed:   KeepProcessed[In, Out, erased.Error],
	}
}
