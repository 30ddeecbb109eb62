package mass

import (
	"context"

	"github.com/ib-77/ropair/pkg/rop"
	"github.com/ib-77/ropair/pkg/rop/solo"
)

func Validating[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string),
	onCancel func(ctx context.Context, in rop.Result[T])) <-chan rop.Result[T] {

	return stage(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.AndValidate(ctx, in, validate)
	}, onCancel)
}

func Switching[In, Out any](ctx context.Context, input rop.Result[In],
	switchOnSuccess func(ctx context.Context, r In) rop.Result[Out],
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	return stage(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Switch(ctx, in, switchOnSuccess)
	}, onCancel)
}

func Mapping[In, Out any](ctx context.Context, input rop.Result[In],
	mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	return stage(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, in, mapOnSuccess)
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	return stage(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, in, onTryExecute)
	}, onCancel)
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finalizing reduces every result to Out with handlers, preserving the order
// results arrive in.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out],
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan Out {

	return drain(ctx, inputCh, func(ctx context.Context, in rop.Result[In]) Out {
		return solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)
	}, onCancel)
}

// Pairing turns every result into its error-first pair, preserving the order
// results arrive in.
func Pairing[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	onCancel func(ctx context.Context, in rop.Result[T])) <-chan rop.Pair[T] {

	return drain(ctx, inputCh, func(_ context.Context, in rop.Result[T]) rop.Pair[T] {
		return in.ToPair()
	}, onCancel)
}
