// Package compare provides utilities for comparing values, both for equality and for order.
package compare

import "math"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Comparator is a three-way comparison that may fail. A negative result orders a
// before b, a positive result orders a after b and zero means the two are equal.
// Comparators backed by user code report exceptions through the error.
type Comparator[T any] func(a, b T) (int, error)

// Sign maps a numeric comparison result onto -1, 0 or 1.
// NaN and both signed zeros are treated as equal (0).
func Sign(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}
