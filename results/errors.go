package results

var (
	// ErrValueOfFailure is the panic value raised by V when called on a failure.
	ErrValueOfFailure = &UnwrapError{msg: "tried to get value from an error result"}
	// ErrErrorOfSuccess is the panic value raised by E when called on a success.
	ErrErrorOfSuccess = &UnwrapError{msg: "tried to get error from an ok result"}
	// ErrStatusPending is the panic value raised by Status.Value when the status is not yet known.
	ErrStatusPending = &UnwrapError{msg: "tried to get value from a pending status"}
)

// UnwrapError signals that a payload was requested from the wrong variant.  It is only ever raised
// with panic; it indicates a bug in the caller, never a failure of the computation the Result describes.
type UnwrapError struct {
	msg string
}

func (e *UnwrapError) Error() string {
	return e.msg
}
