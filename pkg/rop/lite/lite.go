package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/core"
	"github.com/ib-77/ropmatch/pkg/rop/erased"
	"github.com/ib-77/ropmatch/pkg/rop/pattern"
	"github.com/ib-77/ropmatch/pkg/rop/solo"
)

// Engine evaluates one result of a stream. Run and Turnout drive engines.
type Engine[In, Out, E any] func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E]

func Run[T, E any](ctx context.Context, inputCh <-chan rop.Result[T, E],
	engine Engine[T, T, E], lines int) <-chan rop.Result[T, E] {
	return Turnout(ctx, inputCh, engine, lines)
}

func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine Engine[In, Out, E], lines int) <-chan rop.Result[Out, E] {

	out := make(chan rop.Result[Out, E])
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, core.CancellationHandlers[In, Out, E]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func lift[In, Out, E any](step func(ctx context.Context, input rop.Result[In, E]) rop.Result[Out, E]) Engine[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E] {
		out := make(chan rop.Result[Out, E], 1)
		out <- step(ctx, input)
		close(out)
		return out
	}
}

func Validate[T, E any](validate func(ctx context.Context, in T) (valid bool, failure E)) Engine[T, T, E] {
	return lift(func(ctx context.Context, input rop.Result[T, E]) rop.Result[T, E] {
		return solo.AndValidate(ctx, input, validate)
	})
}

func Switch[In, Out, E any](switchOnSuccess func(ctx context.Context, r In) rop.Result[Out, E]) Engine[In, Out, E] {
	return lift(func(ctx context.Context, input rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Switch(ctx, input, switchOnSuccess)
	})
}

// AndThen is Switch for a step that keeps the value type.
func AndThen[T, E any](next func(ctx context.Context, r T) rop.Result[T, E]) Engine[T, T, E] {
	return Switch(next)
}

// OrElse gives failed results a chance to recover; successes pass through.
func OrElse[T, E any](onFailure func(ctx context.Context, err E) rop.Result[T, E]) Engine[T, T, E] {
	return lift(func(ctx context.Context, input rop.Result[T, E]) rop.Result[T, E] {
		return solo.Recover(ctx, input, onFailure)
	})
}

// Map takes the error type first since it cannot be inferred from mapOnSuccess:
// Map[erased.Error](func(ctx context.Context, s string) int { ... }).
func Map[E, In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out, E] {
	return lift(func(ctx context.Context, input rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Map(ctx, input, mapOnSuccess)
	})
}

// Tee runs sideEffect for successful results only.
func Tee[T, E any](sideEffect func(ctx context.Context, r rop.Result[T, E])) Engine[T, T, E] {
	return lift(func(ctx context.Context, input rop.Result[T, E]) rop.Result[T, E] {
		return solo.Tee(ctx, input, sideEffect)
	})
}

func DoubleTee[T, E any](sideEffect func(ctx context.Context, r T),
	sideEffectOnError func(ctx context.Context, err E)) Engine[T, T, E] {
	return lift(func(ctx context.Context, input rop.Result[T, E]) rop.Result[T, E] {
		return solo.DoubleTee(ctx, input, sideEffect, sideEffectOnError)
	})
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out, erased.Error] {
	return lift(func(ctx context.Context, input rop.Result[In, erased.Error]) rop.Result[Out, erased.Error] {
		return solo.Try(ctx, input, onTryExecute)
	})
}

type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err E) Out
}

// Finally folds every result of input into Out. The returned channel closes
// once input is drained or ctx is done.
func Finally[In, Out, E any](ctx context.Context, input <-chan rop.Result[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {
	return drain(ctx, input, func(r rop.Result[In, E]) Out {
		return solo.Finally(ctx, r, handlers.OnSuccess, handlers.OnError)
	})
}

// Match terminates a stream with a compiled matcher. The matcher is shared by
// all results; it is never modified after compilation.
func Match[T, E, R any](ctx context.Context, input <-chan rop.Result[T, E],
	matcher *pattern.Matcher[rop.Result[T, E], R]) <-chan R {
	return drain(ctx, input, matcher.Match)
}

// Evaluate runs a single result through engine and matcher. fallback is
// returned when ctx is done before a matched value is available.
func Evaluate[In, Out, E, R any](ctx context.Context, input rop.Result[In, E],
	engine Engine[In, Out, E], matcher *pattern.Matcher[rop.Result[Out, E], R], fallback R) R {
	return core.FromChanFirstOrDefault(ctx,
		Match(ctx, Turnout(ctx, core.ToChan(ctx, input), engine, 1), matcher),
		fallback)
}

func drain[In, E, Out any](ctx context.Context, input <-chan rop.Result[In, E],
	fold func(r rop.Result[In, E]) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-input:
				if !ok {
					return
				}

				select {
				case out <- fold(r):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
