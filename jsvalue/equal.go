package jsvalue

import (
	"math"
	"unicode/utf16"
)

// SameValueZero is the equality used by includes and by Tuple equality: NaN equals
// NaN, +0 equals -0, content-compared values compare by content and everything else
// compares by identity.
func SameValueZero(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		if !ok {
			return false
		}

		if math.IsNaN(float64(x)) {
			return math.IsNaN(float64(y))
		}

		return x == y
	case BigInt:
		y, ok := b.(BigInt)
		if !ok {
			return false
		}

		return x.Int().Cmp(y.Int()) == 0
	case ValueEqualer:
		return x.EqualsValue(b)
	default:
		return a == b
	}
}

// IsStrictlyEqual is the equality used by indexOf and lastIndexOf. It differs from
// SameValueZero only in that NaN is not equal to itself.
func IsStrictlyEqual(a, b Value) bool {
	if x, ok := a.(Number); ok && math.IsNaN(float64(x)) {
		return false
	}

	return SameValueZero(a, b)
}

// CompareStrings orders a and b by their UTF-16 code units.
func CompareStrings(a, b string) int {
	if isASCII(a) && isASCII(b) {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}

	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))

	for i := range min(len(ua), len(ub)) {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}

			return 1
		}
	}

	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	default:
		return 0
	}
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 0x80 { //nolint:mnd
			return false
		}
	}

	return true
}
