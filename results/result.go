// Package results provides Result, a tagged union holding either a success value or an error value,
// along with accessors and status predicates that work on immediate Results and on pending Results
// delivered through a futures.Future.
//
// A Result is created with Ok, Err or New and is never modified afterwards.
package results

// Result is either a success carrying a T or a failure carrying an E.  The zero value is a failure
// carrying the zero value of E.
type Result[T any, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok returns a success Result carrying value.
func Ok[T any, E any](value T) Result[T, E] {
	return Result[T, E]{ok: true, value: value}
}

// Err returns a failure Result carrying err.
func Err[T any, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// New converts a Go style (value, error) pair into a Result.  The Result is a failure iff err is non-nil,
// in which case val is discarded.
func New[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](val)
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// V returns the success value of r.  It panics with ErrValueOfFailure if r is a failure.
func (r Result[T, E]) V() T {
	if !r.ok {
		panic(ErrValueOfFailure)
	}
	return r.value
}

// E returns the error value of r.  It panics with ErrErrorOfSuccess if r is a success.
func (r Result[T, E]) E() E {
	if r.ok {
		panic(ErrErrorOfSuccess)
	}
	return r.err
}

// Get returns both payloads and the tag.  Only the payload selected by ok is meaningful; the other is
// the zero value of its type.
func (r Result[T, E]) Get() (value T, err E, ok bool) {
	return r.value, r.err, r.ok
}

// ValueOr returns the success value of r, or fallback if r is a failure.
func (r Result[T, E]) ValueOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// V returns the success value of r.  It panics with ErrValueOfFailure if r is a failure.
// Check IsOk first when the outcome is not known.
func V[T any, E any](r Result[T, E]) T {
	return r.V()
}

// E returns the error value of r.  It panics with ErrErrorOfSuccess if r is a success.
func E[T any, E any](r Result[T, E]) E {
	return r.E()
}

// IsOk reports whether r is a success.
func IsOk[T any, E any](r Result[T, E]) bool {
	return r.IsOk()
}

// IsErr reports whether r is a failure.
func IsErr[T any, E any](r Result[T, E]) bool {
	return r.IsErr()
}
