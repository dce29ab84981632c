package results

import (
	"context"

	"github.com/abevier/flip/futures"
)

// FromFuture returns a Future that resolves to a Result describing the outcome of f.  The returned Future
// never fails: an error from f becomes the Result's error.
func FromFuture[T any](f *futures.Future[T]) *futures.Future[Result[T, error]] {
	out := futures.New[Result[T, error]]()

	f.OnComplete(func(v T, err error) {
		out.Complete(New(v, err))
	})

	return out
}

// ResolveAll waits for all of the provided Futures to complete and returns a Result for each
// future at the index corresponding to the provided slice.
// If the provided context is canceled, the cancellation error will be returned as an error by this function.
func ResolveAll[T any](ctx context.Context, fs []*futures.Future[T]) ([]Result[T, error], error) {
	res := make([]Result[T, error], 0, len(fs))

	for _, f := range fs {
		r, err := f.Get(ctx)
		// check for error before recording to avoid reporting the cancellation as the future's own failure
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		res = append(res, New(r, err))
	}

	return res, nil
}

// Partition splits rs into its success values and its error values, each in their original order.
func Partition[T any, E any](rs []Result[T, E]) ([]T, []E) {
	var (
		vals []T
		errs []E
	)

	for _, r := range rs {
		if r.ok {
			vals = append(vals, r.value)
		} else {
			errs = append(errs, r.err)
		}
	}

	return vals, errs
}
