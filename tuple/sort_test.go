package tuple

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedDefault(t *testing.T) {
	t.Parallel()

	u := jsvalue.Undefined

	tests := []struct {
		name string
		in   *Tuple
		want *Tuple
	}{
		{"numbers", numbers(t, 3, 1, 2), numbers(t, 1, 2, 3)},
		{"lexicographic", numbers(t, 10, 9, 1), numbers(t, 1, 10, 9)},
		{"undefined last", mustNew(t, u, jsvalue.Number(2), u, jsvalue.Number(1)), mustNew(t, jsvalue.Number(1), jsvalue.Number(2), u, u)},
		{"null as string", mustNew(t, jsvalue.Null, jsvalue.String("a"), jsvalue.String("z")),
			mustNew(t, jsvalue.String("a"), jsvalue.Null, jsvalue.String("z"))},
		{"mixed", mustNew(t, jsvalue.String("b"), jsvalue.Bool(true), jsvalue.NewBigInt(2)),
			mustNew(t, jsvalue.NewBigInt(2), jsvalue.String("b"), jsvalue.Bool(true))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.in.Sorted(jsvalue.Undefined)
			require.NoError(t, err)
			assertTupleEqual(t, tt.want, got)
		})
	}
}

func TestSortedShortReturnsReceiver(t *testing.T) {
	t.Parallel()

	one := numbers(t, 1)

	got, err := one.Sorted(jsvalue.Undefined)
	require.NoError(t, err)
	assert.Same(t, one, got)

	got, err = Empty().Sorted(jsvalue.Undefined)
	require.NoError(t, err)
	assert.Same(t, Empty(), got)
}

func TestSortedComparator(t *testing.T) {
	t.Parallel()

	descending := fn(func(args []jsvalue.Value) (jsvalue.Value, error) {
		return jsvalue.Number(asFloat(arg(args, 1)) - asFloat(arg(args, 0))), nil
	})

	got, err := numbers(t, 1, 3, 2).Sorted(descending)
	require.NoError(t, err)
	assertTupleEqual(t, numbers(t, 3, 2, 1), got)

	sawUndefined := false
	ascending := fn(func(args []jsvalue.Value) (jsvalue.Value, error) {
		if jsvalue.IsUndefined(args[0]) || jsvalue.IsUndefined(args[1]) {
			sawUndefined = true
		}

		return jsvalue.String(jsvalue.NumberToString(asFloat(args[0]) - asFloat(args[1]))), nil
	})

	u := jsvalue.Undefined

	got, err = mustNew(t, u, jsvalue.Number(2), jsvalue.Number(1)).Sorted(ascending)
	require.NoError(t, err)
	assertTupleEqual(t, mustNew(t, jsvalue.Number(1), jsvalue.Number(2), u), got)
	assert.False(t, sawUndefined)
}

func TestSortedIsStable(t *testing.T) {
	t.Parallel()

	byLength := fn(func(args []jsvalue.Value) (jsvalue.Value, error) {
		a, _ := jsvalue.ToString(args[0])
		b, _ := jsvalue.ToString(args[1])

		return jsvalue.Number(len(a) - len(b)), nil
	})

	in := mustNew(t, jsvalue.String("bb"), jsvalue.String("a"), jsvalue.String("cc"), jsvalue.String("d"))

	got, err := in.Sorted(byLength)
	require.NoError(t, err)
	assertTupleEqual(t, mustNew(t, jsvalue.String("a"), jsvalue.String("d"), jsvalue.String("bb"), jsvalue.String("cc")), got)
}

func TestSortedNaNMeansEqual(t *testing.T) {
	t.Parallel()

	nan := fn(func([]jsvalue.Value) (jsvalue.Value, error) { return jsvalue.Number(math.NaN()), nil })

	in := numbers(t, 3, 1, 2)

	got, err := in.Sorted(nan)
	require.NoError(t, err)
	assertTupleEqual(t, in, got)
}

func TestSortedErrors(t *testing.T) {
	t.Parallel()

	_, err := numbers(t, 1, 2).Sorted(jsvalue.Number(1))
	require.ErrorIs(t, err, errors.ErrCallableExpected)

	// The comparator is validated before the short-circuit.
	_, err = Empty().Sorted(jsvalue.Null)
	require.ErrorIs(t, err, errors.ErrTypeError)

	boom := fn(func([]jsvalue.Value) (jsvalue.Value, error) { return nil, errors.Throw("boom") })

	_, err = numbers(t, 1, 2).Sorted(boom)

	thrown, ok := errors.ThrownValue(err)
	require.True(t, ok)
	assert.Equal(t, "boom", thrown)

	_, err = mustNew(t, jsvalue.NewSymbol("a"), jsvalue.NewSymbol("b")).Sorted(jsvalue.Undefined)
	require.ErrorIs(t, err, errors.ErrTypeError)

	bigint := fn(func([]jsvalue.Value) (jsvalue.Value, error) { return jsvalue.NewBigInt(1), nil })

	_, err = numbers(t, 1, 2).Sorted(bigint)
	require.ErrorIs(t, err, errors.ErrTypeError)
}

//nolint:paralleltest // reads the global inconsistency counter
func TestSortedSwallowsInconsistentComparator(t *testing.T) {
	before := testutil.ToFloat64(sortInconsistent)

	always := fn(func([]jsvalue.Value) (jsvalue.Value, error) { return jsvalue.Number(1), nil })

	in := numbers(t, 1, 2, 3, 4)

	got, err := in.Sorted(always)
	require.NoError(t, err)
	require.Equal(t, in.Len(), got.Len())

	for _, v := range in.Elements() {
		found, err := got.Includes(v, jsvalue.Undefined)
		require.NoError(t, err)
		assert.True(t, found)
	}

	assert.InDelta(t, before+1, testutil.ToFloat64(sortInconsistent), 0)
}

func TestSortedComparatorCallCount(t *testing.T) {
	t.Parallel()

	calls := 0
	ascending := fn(func(args []jsvalue.Value) (jsvalue.Value, error) {
		calls++

		a, _ := arg(args, 0).(jsvalue.Number)
		b, _ := arg(args, 1).(jsvalue.Number)

		return a - b, nil
	})

	in := numbers(t, 1, 2, 3, 4, 5)

	got, err := in.Sorted(ascending)
	require.NoError(t, err)
	assertTupleEqual(t, in, got)

	// Four comparisons sort the ordered input and four more walk the result.
	assert.Equal(t, 2*(in.Len()-1), calls)
}
