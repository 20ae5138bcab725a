package tuple

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/amp-labs/amp-tuple/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearches(t *testing.T) {
	t.Parallel()

	nan := jsvalue.Number(math.NaN())
	tup := mustNew(t, jsvalue.Number(1), nan, jsvalue.Number(2), jsvalue.Number(1), jsvalue.Number(math.Copysign(0, -1)))

	found, err := tup.Includes(nan, jsvalue.Undefined)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = tup.Includes(jsvalue.Number(0), jsvalue.Undefined)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = tup.Includes(jsvalue.Number(2), jsvalue.Number(3))
	require.NoError(t, err)
	assert.False(t, found)

	found, err = tup.Includes(jsvalue.Number(2), jsvalue.Number(-3))
	require.NoError(t, err)
	assert.True(t, found)

	i, err := tup.IndexOf(nan, jsvalue.Undefined)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i)

	i, err = tup.IndexOf(jsvalue.Number(1), jsvalue.Number(1))
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	i, err = tup.LastIndexOf(jsvalue.Number(1), optional.None[jsvalue.Value]())
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	i, err = tup.LastIndexOf(jsvalue.Number(1), optional.Some(jsvalue.Undefined))
	require.NoError(t, err)
	assert.Equal(t, int64(0), i)

	i, err = tup.LastIndexOf(jsvalue.Number(1), optional.Some[jsvalue.Value](jsvalue.Number(-3)))
	require.NoError(t, err)
	assert.Equal(t, int64(0), i)

	i, err = tup.LastIndexOf(jsvalue.Number(1), optional.Some[jsvalue.Value](jsvalue.Number(-10)))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i)

	i, err = Empty().IndexOf(jsvalue.Number(1), jsvalue.Undefined)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tup := mustNew(t, jsvalue.Number(1), jsvalue.Null, jsvalue.Undefined, numbers(t, 2, 3), jsvalue.String("x"))

	s, err := tup.Join(jsvalue.Undefined)
	require.NoError(t, err)
	assert.Equal(t, "1,,,2,3,x", s)

	s, err = tup.Join(jsvalue.String(" - "))
	require.NoError(t, err)
	assert.Equal(t, "1 -  -  - 2,3 - x", s)

	s, err = Empty().Join(jsvalue.Undefined)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = mustNew(t, jsvalue.NewSymbol("s")).Join(jsvalue.Undefined)
	require.ErrorIs(t, err, errors.ErrTypeError)
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tup := numbers(t, 1, 2, 3)

	positive := fn(func(args []jsvalue.Value) (jsvalue.Value, error) {
		return jsvalue.Bool(asFloat(arg(args, 0)) > 0), nil
	})
	even := fn(func(args []jsvalue.Value) (jsvalue.Value, error) {
		return jsvalue.Bool(int(asFloat(arg(args, 0)))%2 == 0), nil
	})

	all, err := tup.Every(positive, jsvalue.Undefined)
	require.NoError(t, err)
	assert.True(t, all)

	all, err = tup.Every(even, jsvalue.Undefined)
	require.NoError(t, err)
	assert.False(t, all)

	all, err = Empty().Every(even, jsvalue.Undefined)
	require.NoError(t, err)
	assert.True(t, all)

	some, err := tup.Some(even, jsvalue.Undefined)
	require.NoError(t, err)
	assert.True(t, some)

	some, err = Empty().Some(positive, jsvalue.Undefined)
	require.NoError(t, err)
	assert.False(t, some)

	v, err := tup.Find(even, jsvalue.Undefined)
	require.NoError(t, err)
	assert.Equal(t, jsvalue.Number(2), v)

	v, err = numbers(t, 1, 3).Find(even, jsvalue.Undefined)
	require.NoError(t, err)
	assert.Equal(t, jsvalue.Undefined, v)

	i, err := tup.FindIndex(even, jsvalue.Undefined)
	require.NoError(t, err)
	assert.Equal(t, int64(1), i)

	i, err = numbers(t, 1, 3).FindIndex(even, jsvalue.Undefined)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i)

	_, err = tup.Every(jsvalue.Undefined, jsvalue.Undefined)
	require.ErrorIs(t, err, errors.ErrCallableExpected)
}

func TestForEach(t *testing.T) {
	t.Parallel()

	var seen []jsvalue.Value

	collect := fn(func(args []jsvalue.Value) (jsvalue.Value, error) {
		seen = append(seen, args[0])

		return jsvalue.Bool(false), nil
	})

	require.NoError(t, numbers(t, 1, 2).ForEach(collect, jsvalue.Undefined))
	assert.Equal(t, []jsvalue.Value{jsvalue.Number(1), jsvalue.Number(2)}, seen)
}

func TestReduce(t *testing.T) {
	t.Parallel()

	concat := fn(func(args []jsvalue.Value) (jsvalue.Value, error) {
		a, _ := jsvalue.ToString(args[0])
		b, _ := jsvalue.ToString(args[1])

		return jsvalue.String(a + b), nil
	})

	tup := mustNew(t, jsvalue.String("a"), jsvalue.String("b"), jsvalue.String("c"))

	v, err := tup.Reduce(concat, optional.None[jsvalue.Value]())
	require.NoError(t, err)
	assert.Equal(t, jsvalue.String("abc"), v)

	v, err = tup.ReduceRight(concat, optional.None[jsvalue.Value]())
	require.NoError(t, err)
	assert.Equal(t, jsvalue.String("cba"), v)

	v, err = tup.Reduce(concat, optional.Some[jsvalue.Value](jsvalue.String(">")))
	require.NoError(t, err)
	assert.Equal(t, jsvalue.String(">abc"), v)

	v, err = Empty().Reduce(concat, optional.Some[jsvalue.Value](jsvalue.Number(0)))
	require.NoError(t, err)
	assert.Equal(t, jsvalue.Number(0), v)

	_, err = Empty().ReduceRight(concat, optional.None[jsvalue.Value]())
	require.ErrorIs(t, err, errors.ErrTypeError)

	_, err = tup.Reduce(jsvalue.Number(1), optional.None[jsvalue.Value]())
	require.ErrorIs(t, err, errors.ErrCallableExpected)
}
