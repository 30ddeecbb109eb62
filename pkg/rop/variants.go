package rop

// Never has no implementations, so nil is its only value. It types the pair
// slot that a statically known variant can never fill.
type Never interface {
	never()
}

// Ok is a result that can only succeed.
type Ok[T any] struct {
	value T
}

func OkOf[T any](v T) Ok[T] {
	return Ok[T]{value: v}
}

func (o Ok[T]) Result() T       { return o.value }
func (o Ok[T]) Err() error      { return nil }
func (o Ok[T]) IsSuccess() bool { return true }

func (o Ok[T]) AsResult() Result[T] {
	return Success(o.value)
}

func (o Ok[T]) ToPair() OkPair[T] {
	return OkPair[T]{value: o.value}
}

// OkPair is the pair of an Ok: no error slot, value always present.
type OkPair[T any] struct {
	value T
}

func (p OkPair[T]) Err() Never {
	return nil
}

func (p OkPair[T]) Value() T {
	return p.value
}

func (p OkPair[T]) Unpack() (Never, T) {
	return nil, p.value
}

// Err is a result that can only fail.
type Err[T any] struct {
	err error
}

func ErrOf[T any](err error) Err[T] {
	return Err[T]{err: err}
}

func (e Err[T]) Result() T {
	var zero T
	return zero
}

func (e Err[T]) Err() error      { return e.err }
func (e Err[T]) IsSuccess() bool { return false }

// AsResult widens e, keeping cancellation errors as cancels.
func (e Err[T]) AsResult() Result[T] {
	if IsCancellationError(e.err) {
		return Cancel[T](e.err)
	}
	return Fail[T](e.err)
}

func (e Err[T]) ToPair() ErrPair[T] {
	return ErrPair[T]{err: e.err}
}

// ErrPair is the pair of an Err: error always present, no value slot.
type ErrPair[T any] struct {
	err error
}

func (p ErrPair[T]) Err() error {
	return p.err
}

func (p ErrPair[T]) Value() Never {
	return nil
}

func (p ErrPair[T]) Unpack() (error, Never) {
	return p.err, nil
}
