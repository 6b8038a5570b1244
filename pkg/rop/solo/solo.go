package solo

import (
	"context"

	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/erased"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, failure E)) rop.Result[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input rop.Result[T, E],
	validate func(ctx context.Context, in T) (valid bool, failure E)) rop.Result[T, E] {

	if input.IsSuccess() {

		if isValid, failure := validate(ctx, input.Value()); isValid {
			return input
		} else {
			return rop.Fail[T](failure)
		}
	}
	return input
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.FailFrom[In, Out](input)
}

// Recover is the error-side mirror of Switch.
func Recover[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) rop.Result[T, E]) rop.Result[T, E] {

	if input.IsFailure() {
		return onFailure(ctx, input.Err())
	}
	return input
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return rop.FailFrom[In, Out](input)
}

func MapErr[T, E, F any](ctx context.Context,
	input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) F) rop.Result[T, F] {
	return rop.MapErr(input, func(err E) F { return onFailure(ctx, err) })
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r rop.Result[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

// Try calls a function following the (Out, error) convention; a returned
// error becomes an erased error holding it.
func Try[In, Out any](ctx context.Context, input rop.Result[In, erased.Error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, erased.Error] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return rop.FailWith[Out](err)
		}

		return rop.Success[Out, erased.Error](out)
	}

	return rop.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T, erased.Error],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T, erased.Error] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return rop.FailWith[T](err)
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}

// Join feeds input through inputsF in order, folding every step with concat.
// With breakOnError the first failure stops the run.
func Join[T, E any](ctx context.Context,
	input rop.Result[T, E],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T, E]) rop.Result[T, E],
	inputsF ...func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}

// ValidateAll runs every validator against input, keeping the first failure.
// Without breakOnError the remaining validators still run and see the
// original input.
func ValidateAll[T, E any](
	ctx context.Context,
	input rop.Result[T, E],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	var first *rop.Result[T, E]
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T, E]) rop.Result[T, E] {
			if current.IsFailure() && first == nil {
				first = &current
			}
			if first != nil {
				return *first
			}
			return current
		},
		wrapKeepingInput(input, inputsF)...,
	)
}

func wrapKeepingInput[T, E any](input rop.Result[T, E],
	inputsF []func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E]) []func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E] {

	wrapped := make([]func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E], 0, len(inputsF))
	for _, f := range inputsF {
		wrapped = append(wrapped, func(ctx context.Context, _ rop.Result[T, E]) rop.Result[T, E] {
			return f(ctx, input)
		})
	}
	return wrapped
}
