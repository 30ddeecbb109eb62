package rop

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
}

// WithError is the capability set pair conversion relies on: which variant
// an instance is, plus the value and error accessors.
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

type Traceable interface {
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ WithCancel[int] = Result[int]{}
	_ Traceable       = Result[int]{}
	_ WithError[int]  = Ok[int]{}
	_ WithError[int]  = Err[int]{}
)
