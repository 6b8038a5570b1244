package custom

import (
	"context"
	"sync"

	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/core"
)

func Run[T, E any](ctx context.Context, inputCh <-chan rop.Result[T, E],
	engine func(ctx context.Context, input rop.Result[T, E]) <-chan rop.Result[T, E],
	handlers core.CancellationHandlers[T, T, E],
	onSuccess func(ctx context.Context, in rop.Result[T, E]), lines int) <-chan rop.Result[T, E] {
	return Turnout(ctx, inputCh, engine, handlers, onSuccess, lines)
}

// Turnout is lite.Turnout with cancellation handlers and a callback for every
// result delivered to the output.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E],
	handlers core.CancellationHandlers[In, Out, E],
	onSuccess func(ctx context.Context, in rop.Result[Out, E]), lines int) <-chan rop.Result[Out, E] {

	out := make(chan rop.Result[Out, E])
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func RunSingle[T, E any](ctx context.Context, inputCh <-chan rop.Result[T, E],
	engine func(ctx context.Context, input rop.Result[T, E]) <-chan rop.Result[T, E],
	handlers core.CancellationHandlers[T, T, E],
	onSuccess func(ctx context.Context, in rop.Result[T, E])) <-chan rop.Result[T, E] {
	return Run(ctx, inputCh, engine, handlers, onSuccess, 1)
}

// Collect reads out until it is closed. Unlike core.FromChanMany it ignores
// cancellation, so the results emitted by cancellation handlers are kept.
func Collect[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
