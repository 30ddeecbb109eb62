package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropair/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}
	if isValid, errMsg := validate(ctx, input.Result()); !isValid {
		return rop.Fail[T](errors.New(errMsg))
	}
	return input
}

// Switch moves a success onto a new track. Failures and cancels are retyped
// and passed through untouched.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.CancelFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		return rop.Success(onSuccess(ctx, r))
	})
}

// Try calls a Go-style (value, error) function and folds its return values
// back into a Result with rop.FromPair.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		out, err := onTryExecute(ctx, r)
		return rop.FromPair(err, out)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

// ToPair ends the track with the error-first pair instead of handlers.
func ToPair[T any](input rop.Result[T]) rop.Pair[T] {
	return input.ToPair()
}

// Unpack ends the track with Go's multi-value form, error first.
func Unpack[T any](input rop.Result[T]) (error, T) {
	return input.ToPair().Unpack()
}
