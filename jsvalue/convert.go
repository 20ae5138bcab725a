package jsvalue

import (
	stderrors "errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-tuple/errors"
)

// MaxSafeInteger is the largest integer a host double represents exactly (2^53 - 1).
const MaxSafeInteger int64 = 1<<53 - 1

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToPrimitive converts objects to primitives and returns primitives unchanged.
func ToPrimitive(v Value) (Value, error) {
	if !IsObject(v) {
		return v, nil
	}

	if pc, ok := v.(PrimitiveConverter); ok {
		return pc.ToPrimitive()
	}

	if f, ok := v.(*Function); ok {
		return String(f.String()), nil
	}

	return String("[object Object]"), nil
}

// ToNumber converts v to a host number.
func ToNumber(v Value) (float64, error) {
	switch x := v.(type) {
	case UndefinedType:
		return math.NaN(), nil
	case NullType:
		return 0, nil
	case Bool:
		if x {
			return 1, nil
		}

		return 0, nil
	case Number:
		return float64(x), nil
	case String:
		return StringToNumber(string(x)), nil
	case BigInt:
		return 0, errors.TypeError("Cannot convert a BigInt value to a number")
	case *Symbol:
		return 0, errors.TypeError("Cannot convert a Symbol value to a number")
	case Object:
		prim, err := ToPrimitive(x)
		if err != nil {
			return 0, err
		}

		return ToNumber(prim)
	case nil:
		return 0, errors.TypeError("Cannot convert a missing value to a number")
	default:
		return 0, errors.TypeError("Cannot convert a %s to a number", v.TypeOf())
	}
}

// StringToNumber parses s the way the host's Number(string) does: surrounding white
// space is ignored, the empty string is 0 and anything unparsable is NaN.
func StringToNumber(s string) float64 {
	s = strings.TrimFunc(s, isWhiteSpace)

	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0

		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}

		if base != 0 {
			return parseRadix(s[2:], base)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return f
}

func parseRadix(digits string, base int) float64 {
	if digits == "" {
		return math.NaN()
	}

	var f float64

	for _, r := range digits {
		d, err := strconv.ParseUint(string(r), base, 8)
		if err != nil {
			return math.NaN()
		}

		f = f*float64(base) + float64(d)
	}

	return f
}

func isWhiteSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xa0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}

	return r >= 0x2000 && r <= 0x200a
}

// ToInteger converts v to an integer, truncating toward zero. NaN becomes 0 and values
// beyond the int64 range (including the infinities) saturate.
func ToInteger(v Value) (int64, error) {
	f, err := ToNumber(v)
	if err != nil {
		return 0, err
	}

	return FloatToInteger(f), nil
}

// FloatToInteger is ToInteger for a number already converted.
func FloatToInteger(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(math.Trunc(f))
	}
}

// ToIndex converts v to a non-negative safe integer, failing with a RangeError otherwise.
// Undefined converts to 0.
func ToIndex(v Value) (int64, error) {
	if IsUndefined(v) {
		return 0, nil
	}

	i, err := ToInteger(v)
	if err != nil {
		return 0, err
	}

	if i < 0 || i > MaxSafeInteger {
		return 0, errors.ErrInvalidIndex
	}

	return i, nil
}

// ToLength clamps v to the range of valid lengths, [0, 2^53 - 1].
func ToLength(v Value) (int64, error) {
	i, err := ToInteger(v)
	if err != nil {
		return 0, err
	}

	return min(max(i, 0), MaxSafeInteger), nil
}

// ToBoolean converts v to a host boolean. It never fails.
func ToBoolean(v Value) bool {
	switch x := v.(type) {
	case nil, UndefinedType, NullType:
		return false
	case Bool:
		return bool(x)
	case Number:
		return x != 0 && !math.IsNaN(float64(x))
	case String:
		return x != ""
	case BigInt:
		return x.v != nil && x.v.Sign() != 0
	default:
		return true
	}
}

// ToString converts v to a host string.
func ToString(v Value) (string, error) {
	switch x := v.(type) {
	case UndefinedType:
		return "undefined", nil
	case NullType:
		return "null", nil
	case Bool:
		return strconv.FormatBool(bool(x)), nil
	case Number:
		return NumberToString(float64(x)), nil
	case String:
		return string(x), nil
	case BigInt:
		return x.String(), nil
	case *Symbol:
		return "", errors.TypeError("Cannot convert a Symbol value to a string")
	case StringConverter:
		return x.ToJSString()
	case Object:
		prim, err := ToPrimitive(x)
		if err != nil {
			return "", err
		}

		return ToString(prim)
	case nil:
		return "", errors.TypeError("Cannot convert a missing value to a string")
	default:
		return "", errors.TypeError("Cannot convert a %s to a string", v.TypeOf())
	}
}

// NumberToString renders f the way the host's Number.prototype.toString does for radix 10:
// the shortest round-tripping digits, in plain notation for magnitudes in [1e-6, 1e21)
// and in exponent notation otherwise.
func NumberToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f < 0:
		return "-" + NumberToString(-f)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)

	e, _ := strconv.Atoi(exponent)
	k := len(digits)
	n := e + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}

	exp := strconv.Itoa(abs(n - 1))

	if k == 1 {
		return digits + "e" + sign + exp
	}

	return digits[:1] + "." + digits[1:] + "e" + sign + exp
}

func abs(i int) int {
	if i < 0 {
		return -i
	}

	return i
}
