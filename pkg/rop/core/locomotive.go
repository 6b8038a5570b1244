package core

import (
	"context"
	"sync"

	"github.com/ib-77/ropmatch/pkg/rop"
)

// CancellationHandlers decide what happens to the results a cancelled
// Locomotive still holds. Any of them may be nil.
type CancellationHandlers[In, Out, E any] struct {
	// OnCancel receives the input that was never read.
	OnCancel func(ctx context.Context, inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E])
	// OnCancelUnprocessed receives a result read but not evaluated.
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In, E], outCh chan<- rop.Result[Out, E])
	// OnCancelProcessed receives a result evaluated but not delivered.
	OnCancelProcessed func(ctx context.Context, in rop.Result[In, E], processed rop.Result[Out, E], outCh chan<- rop.Result[Out, E])
}

func (h CancellationHandlers[In, Out, E]) remaining(ctx context.Context,
	inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E]) {
	if h.OnCancel != nil {
		h.OnCancel(ctx, inputCh, outCh)
	}
}

func (h CancellationHandlers[In, Out, E]) unprocessed(ctx context.Context, in rop.Result[In, E],
	inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E]) {
	if h.OnCancelUnprocessed != nil {
		h.OnCancelUnprocessed(ctx, in, outCh)
	}
	h.remaining(ctx, inputCh, outCh)
}

func (h CancellationHandlers[In, Out, E]) processed(ctx context.Context, in rop.Result[In, E], pr rop.Result[Out, E],
	inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E]) {
	if h.OnCancelProcessed != nil {
		h.OnCancelProcessed(ctx, in, pr, outCh)
	}
	h.remaining(ctx, inputCh, outCh)
}

// Locomotive pulls results from inputCh, runs engine on each and pushes the
// outcome to outCh until the input closes or ctx is done. Every result it
// reads is either delivered or handed to exactly one cancellation handler.
// onDelivered, if set, is called after each delivery.
func Locomotive[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E],
	engine func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E],
	handlers CancellationHandlers[In, Out, E],
	onDelivered func(ctx context.Context, in rop.Result[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		var in rop.Result[In, E]
		select {
		case <-ctx.Done():
			handlers.remaining(ctx, inputCh, outCh)
			return
		case next, ok := <-inputCh:
			if !ok {
				return
			}
			in = next
		}

		var pr rop.Result[Out, E]
		select {
		case <-ctx.Done():
			handlers.unprocessed(ctx, in, inputCh, outCh)
			return
		case next, running := <-engine(ctx, in):
			if !running {
				return
			}
			pr = next
		}

		select {
		case <-ctx.Done():
			handlers.processed(ctx, in, pr, inputCh, outCh)
			return
		case outCh <- pr:
			if onDelivered != nil {
				onDelivered(ctx, pr)
			}
		}
	}
}
