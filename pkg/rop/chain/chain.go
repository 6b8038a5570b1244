package chain

import (
	"context"

	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/erased"
	"github.com/ib-77/ropmatch/pkg/rop/pattern"
	"github.com/ib-77/ropmatch/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[E, T any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rop.Success[T, E](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, erased.Error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, erased.Error] {
	return &Chain[U, erased.Error]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// AndThen chains a step keeping the success type
func (c *Chain[T, E]) AndThen(onSuccess func(context.Context, T) rop.Result[T, E]) *Chain[T, E] {
	return Then(c, onSuccess)
}

// OrElse replaces a failure with the outcome of onFailure
func (c *Chain[T, E]) OrElse(onFailure func(context.Context, E) rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Recover(c.ctx, c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T, E]) {
				onSuccess(ctx, result.Value())
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}

// Match collapses the chain through an ordered list of handlers
func Match[T, E, R any](c *Chain[T, E], cases ...pattern.Pattern[rop.Result[T, E], R]) R {
	return rop.Match(c.result, cases...)
}
