package jsvalue

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleStringConverter is implemented by primitives with their own locale-sensitive form.
type LocaleStringConverter interface {
	ToJSLocaleString(tag language.Tag) (string, error)
}

// ToLocaleString renders v for the given locale. Numbers and integral bigints are
// grouped and rounded to at most three fraction digits, like the host's default
// Intl.NumberFormat. Other values fall back to ToString.
func ToLocaleString(v Value, tag language.Tag) (string, error) {
	switch x := v.(type) {
	case Number:
		f := float64(x)

		switch {
		case math.IsNaN(f):
			return "NaN", nil
		case math.IsInf(f, 1):
			return "∞", nil
		case math.IsInf(f, -1):
			return "-∞", nil
		}

		return message.NewPrinter(tag).Sprint(number.Decimal(f, number.MaxFractionDigits(3))), nil //nolint:mnd
	case BigInt:
		if i := x.Int(); i.IsInt64() {
			return message.NewPrinter(tag).Sprint(number.Decimal(i.Int64())), nil
		}

		return x.String(), nil
	case LocaleStringConverter:
		return x.ToJSLocaleString(tag)
	default:
		return ToString(v)
	}
}
