package results

import (
	"context"

	"github.com/abevier/flip/futures"
)

const nilPendingMsg = "pending result future must not be nil"

// IsOkF returns a Future that resolves to true once f resolves to a success and false once it resolves
// to a failure.  If f itself fails or is canceled the returned Future fails with the same error.
// It panics if f is nil.
func IsOkF[T any, E any](f *futures.Future[Result[T, E]]) *futures.Future[bool] {
	if f == nil {
		panic(nilPendingMsg)
	}
	return futures.Map(f, func(r Result[T, E]) bool {
		return r.IsOk()
	})
}

// IsErrF is the complement of IsOkF.
func IsErrF[T any, E any](f *futures.Future[Result[T, E]]) *futures.Future[bool] {
	if f == nil {
		panic(nilPendingMsg)
	}
	return futures.Map(f, func(r Result[T, E]) bool {
		return r.IsErr()
	})
}

// Input holds either an immediate Result or a pending one.  Use Immediate or Pending to build it.
type Input[T any, E any] struct {
	result  Result[T, E]
	pending *futures.Future[Result[T, E]]
}

// Immediate wraps a Result that is already available.
func Immediate[T any, E any](r Result[T, E]) Input[T, E] {
	return Input[T, E]{result: r}
}

// Pending wraps a Future that will resolve to a Result.  It panics if f is nil.
func Pending[T any, E any](f *futures.Future[Result[T, E]]) Input[T, E] {
	if f == nil {
		panic(nilPendingMsg)
	}
	return Input[T, E]{pending: f}
}

// IsPending reports whether in was built with Pending.
func (in Input[T, E]) IsPending() bool {
	return in.pending != nil
}

// Status is the outcome of CheckOk or CheckErr: a boolean known right away for an immediate Input, or a
// Future of one for a pending Input.
type Status struct {
	value   bool
	pending *futures.Future[bool]
}

// IsPending reports whether the status is still being computed.
func (s Status) IsPending() bool {
	return s.pending != nil
}

// Value returns the status of an immediate Input.  It panics with ErrStatusPending if the status came
// from a pending Input; use Get or Future for those.
func (s Status) Value() bool {
	if s.pending != nil {
		panic(ErrStatusPending)
	}
	return s.value
}

// Future returns the status as a Future.  For an immediate Input the Future is already completed.
func (s Status) Future() *futures.Future[bool] {
	if s.pending != nil {
		return s.pending
	}
	return futures.Completed(s.value)
}

// Get returns the status, blocking until a pending status resolves or ctx is done.
func (s Status) Get(ctx context.Context) (bool, error) {
	if s.pending == nil {
		return s.value, nil
	}
	return s.pending.Get(ctx)
}

// CheckOk reports whether in is, or will resolve to, a success.
func CheckOk[T any, E any](in Input[T, E]) Status {
	if in.pending != nil {
		return Status{pending: IsOkF(in.pending)}
	}
	return Status{value: in.result.IsOk()}
}

// CheckErr reports whether in is, or will resolve to, a failure.
func CheckErr[T any, E any](in Input[T, E]) Status {
	if in.pending != nil {
		return Status{pending: IsErrF(in.pending)}
	}
	return Status{value: in.result.IsErr()}
}
