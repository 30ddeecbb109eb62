package rop

// Pair is a Result laid out error first, value second.
//
// Exactly one side is populated. A nil Err marks the error as absent and a
// false from Value marks the value as absent. Go cannot tie the two slots
// together in the type system, so callers narrow by checking Err first:
//
//	err, v := res.ToPair().Unpack()
//	if err != nil {
//		return err
//	}
//	use(v)
//
// Use Ok and Err when the variant is known statically and the absent side
// should be typed as Never.
type Pair[T any] struct {
	err      error
	value    T
	hasValue bool
}

// PairOf converts any success/failure carrier into a Pair. Only IsSuccess
// decides which side is filled; payloads are copied as they are.
func PairOf[T any](r WithError[T]) Pair[T] {
	if r.IsSuccess() {
		return Pair[T]{value: r.Result(), hasValue: true}
	}
	return Pair[T]{err: r.Err()}
}

// Err returns the error, or nil when the pair came from a success.
func (p Pair[T]) Err() error {
	return p.err
}

// Value returns the value and true, or T's zero value and false when the pair
// came from a failure.
func (p Pair[T]) Value() (T, bool) {
	return p.value, p.hasValue
}

func (p Pair[T]) HasValue() bool {
	return p.hasValue
}

// Unpack destructures the pair. The absent value is T's zero value.
func (p Pair[T]) Unpack() (error, T) {
	return p.err, p.value
}

// ToResult turns the pair back into a Result. A failure side holding a
// cancellation error becomes a cancel.
func (p Pair[T]) ToResult() Result[T] {
	if p.hasValue {
		return Success(p.value)
	}
	if IsCancellationError(p.err) {
		return Cancel[T](p.err)
	}
	return Fail[T](p.err)
}
