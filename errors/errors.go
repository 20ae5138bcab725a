// Package errors defines the error taxonomy shared by the tuple engine and its host
// collaborators. Every error carries one of the two host error kinds (TypeError or
// RangeError) in its chain, so callers can classify failures with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeError is the kind of every TypeError raised by the engine.
	ErrTypeError = errors.New("TypeError")

	// ErrRangeError is the kind of every RangeError raised by the engine.
	ErrRangeError = errors.New("RangeError")
)

var (
	// ErrInvalidElement is returned when a non-primitive value is about to enter a Tuple.
	ErrInvalidElement = fmt.Errorf("%w: Tuples cannot contain non-primitive values", ErrTypeError)

	// ErrCallableExpected is returned when a required callback is not callable.
	ErrCallableExpected = fmt.Errorf("%w: callable expected", ErrTypeError)

	// ErrIncompatibleReceiver is returned when an operation is invoked on a receiver
	// that is neither a Tuple nor a Tuple wrapper object.
	ErrIncompatibleReceiver = fmt.Errorf("%w: 'this' must be a Tuple", ErrTypeError)

	// ErrLengthTooBig is returned when a result would exceed the safe-integer ceiling.
	ErrLengthTooBig = fmt.Errorf("%w: length too big", ErrRangeError)

	// ErrIndexOutOfRange is returned by index-bounded replacement.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrRangeError)

	// ErrInvalidIndex is returned when a value cannot be converted to an index.
	ErrInvalidIndex = fmt.Errorf("%w: invalid index", ErrRangeError)
)

// TypeError returns a new error of kind ErrTypeError with a formatted message.
func TypeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTypeError, fmt.Sprintf(format, args...))
}

// RangeError returns a new error of kind ErrRangeError with a formatted message.
func RangeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRangeError, fmt.Sprintf(format, args...))
}

// IsTypeError reports whether err is (or wraps) a TypeError.
func IsTypeError(err error) bool {
	return errors.Is(err, ErrTypeError)
}

// IsRangeError reports whether err is (or wraps) a RangeError.
func IsRangeError(err error) bool {
	return errors.Is(err, ErrRangeError)
}

// Thrown carries a value thrown by user code (a callback, comparator or
// property trap). It is propagated unchanged through every engine operation.
type Thrown struct {
	Value any
}

func (t *Thrown) Error() string {
	return fmt.Sprintf("uncaught %v", t.Value)
}

// Throw wraps value as a Thrown error.
func Throw(value any) error {
	return &Thrown{Value: value}
}

// ThrownValue extracts the thrown value from err, if err carries one.
func ThrownValue(err error) (any, bool) {
	var thrown *Thrown
	if errors.As(err, &thrown) {
		return thrown.Value, true
	}

	return nil, false
}
