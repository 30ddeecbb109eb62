package mass

import (
	"context"

	"github.com/ib-77/ropair/pkg/rop"
	"github.com/ib-77/ropair/pkg/rop/core"
)

// stage runs process for a single input and delivers its result on the
// returned channel. If ctx ends first, onCancel gets the input and the
// channel closes empty.
func stage[In, Out any](ctx context.Context, input rop.Result[In],
	process func(ctx context.Context, input rop.Result[In]) rop.Result[Out],
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	ch := make(chan rop.Result[Out], 1)
	out := make(chan rop.Result[Out], 1)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- process(ctx, input)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
				return
			}
		case <-ctx.Done():
		}

		log.Debugw("stage cancelled", "id", input.Id())
		if onCancel != nil {
			onCancel(ctx, input)
		}
	}()

	return out
}

// drain converts every result read from inputCh, in arrival order, until
// inputCh closes or ctx ends. On ctx end onCancel receives the result that
// was read but not delivered, if any, and, when core process options ask for
// it, every result still queued in inputCh.
func drain[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	convert func(ctx context.Context, in rop.Result[In]) Out,
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			if ctx.Err() != nil {
				cancelRemaining(ctx, inputCh, onCancel)
				return
			}

			select {
			case <-ctx.Done():
				cancelRemaining(ctx, inputCh, onCancel)
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				select {
				case out <- convert(ctx, in):
				case <-ctx.Done():
					log.Debugw("drain cancelled", "id", in.Id())
					if onCancel != nil {
						onCancel(ctx, in)
					}
					cancelRemaining(ctx, inputCh, onCancel)
					return
				}
			}
		}
	}()

	return out
}

func cancelRemaining[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	onCancel func(ctx context.Context, in rop.Result[T])) {

	if onCancel == nil || !core.IsProcessRemainingEnabled(ctx, false) {
		return
	}

	n := 0
	for in := range inputCh {
		onCancel(ctx, in)
		n++
	}
	log.Debugw("remaining results cancelled", "count", n)
}
