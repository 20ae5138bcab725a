package tuple

import (
	"testing"

	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, values ...jsvalue.Value) *Tuple {
	t.Helper()

	tup, err := New(values...)
	require.NoError(t, err)

	return tup
}

func numbers(t *testing.T, values ...float64) *Tuple {
	t.Helper()

	vals := make([]jsvalue.Value, len(values))
	for i, v := range values {
		vals[i] = jsvalue.Number(v)
	}

	return mustNew(t, vals...)
}

func assertTupleEqual(t *testing.T, want, got *Tuple) {
	t.Helper()

	require.NotNil(t, got)
	require.Truef(t, want.Equals(got), "want %s, got %s", want, got)
}

func fn(body func(args []jsvalue.Value) (jsvalue.Value, error)) *jsvalue.Function {
	return jsvalue.NewFunction("callback", func(_ jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, error) {
		return body(args)
	})
}

func arg(args []jsvalue.Value, i int) jsvalue.Value {
	if i < len(args) {
		return args[i]
	}

	return jsvalue.Undefined
}

func asFloat(v jsvalue.Value) float64 {
	n, _ := jsvalue.ToNumber(v)

	return n
}
