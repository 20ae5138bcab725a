// Package optional marks results that may legitimately be absent, such as an
// index cursor that has run past the last present element of a sparse
// array-like, or a trailing argument the caller did not pass.
package optional

import "fmt"

// Value holds either one T or nothing. The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
}

// Some wraps v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None is the absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get unpacks the value in comma-ok form.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.present
}

// Empty reports whether o holds nothing.
func (o Value[T]) Empty() bool {
	return !o.present
}

// GetOrElse returns the held value, or dfl when absent.
func (o Value[T]) GetOrElse(dfl T) T {
	if !o.present {
		return dfl
	}

	return o.value
}

func (o Value[T]) String() string {
	if !o.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
