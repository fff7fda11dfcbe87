package future

import (
	"errors"
	"fmt"
)

var (
	// ErrPanicked is the identity error of all panic-carrying failures.
	// errors.Is reports true for it against any PanicError.
	ErrPanicked = errors.New("future: panicked")

	// ErrNilFuture is the failure a FlatMap-derived future completes
	// with when the continuation returns a nil future.
	ErrNilFuture = errors.New("future: the callback returned a nil future")
)

// PanicError carries a value recovered from a panicking task.
// A task that panics completes its future with a failure Result whose
// error is a PanicError wrapping the recovered value.
type PanicError struct {
	// V is the recovered value, as returned by recover.
	V any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("future: panicked: %v", e.V)
}

func (e PanicError) Is(target error) bool {
	return target == ErrPanicked
}

// Unwrap returns the recovered value itself when it is an error.
func (e PanicError) Unwrap() error {
	if err, ok := e.V.(error); ok {
		return err
	}
	return nil
}
