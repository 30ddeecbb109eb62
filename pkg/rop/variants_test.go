package rop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOk_ValueNeedsNoCheck(t *testing.T) {
	t.Parallel()

	never, v := OkOf(42).ToPair().Unpack()
	assert.Nil(t, never)

	// v is a plain int here
	assert.Equal(t, 43, v+1)
	assert.Equal(t, 42, OkOf(42).ToPair().Value())
}

func TestOk_AsResult(t *testing.T) {
	t.Parallel()

	stored := &item{id: 1}
	res := OkOf(stored).AsResult()

	assert.True(t, res.IsSuccess())
	assert.Same(t, stored, res.Result())
	v, ok := res.ToPair().Value()
	assert.True(t, ok)
	assert.Same(t, OkOf(stored).ToPair().Value(), v)
}

func TestErr_ErrorNeedsNoCheck(t *testing.T) {
	t.Parallel()

	custom := &lookupError{key: "k"}
	err, never := ErrOf[string](custom).ToPair().Unpack()

	assert.Nil(t, never)
	assert.Same(t, custom, err)
	assert.Nil(t, ErrOf[string](custom).ToPair().Value())
}

func TestErr_AsResult(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	res := ErrOf[int](boom).AsResult()
	assert.True(t, res.IsFailure())
	assert.False(t, res.IsCancel())

	res = ErrOf[int](context.DeadlineExceeded).AsResult()
	assert.True(t, res.IsCancel())
}

func TestVariants_GeneralPairAgrees(t *testing.T) {
	t.Parallel()

	okPair := PairOf[int](OkOf(5))
	assert.True(t, okPair.HasValue())
	assert.NoError(t, okPair.Err())

	boom := errors.New("boom")
	errPair := PairOf[int](ErrOf[int](boom))
	assert.False(t, errPair.HasValue())
	assert.Same(t, boom, errPair.Err())
}
