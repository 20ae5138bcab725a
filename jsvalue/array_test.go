package jsvalue

import (
	"testing"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func presentIndexes(t *testing.T, cursor IndexCursor, length int64) []int64 {
	t.Helper()

	var out []int64

	next, err := cursor.FirstIndex(length)
	require.NoError(t, err)

	for {
		i, ok := next.Get()
		if !ok {
			return out
		}

		out = append(out, i)

		next, err = cursor.NextIndex(i, length)
		require.NoError(t, err)
	}
}

func TestArrayCursors(t *testing.T) {
	t.Parallel()

	dense := NewArray(Number(1), nil, Number(3), nil)
	sparse := NewSparseArray(1<<40, map[int64]Value{5: Number(1), 1 << 39: Number(2), -1: Number(3)})

	assert.Equal(t, []int64{0, 2}, presentIndexes(t, CursorFor(dense), 4))
	assert.Equal(t, []int64{0}, presentIndexes(t, CursorFor(dense), 2))
	assert.Equal(t, []int64{5, 1 << 39}, presentIndexes(t, CursorFor(sparse), sparse.Len()))

	last, err := CursorFor(dense).LastIndex(4)
	require.NoError(t, err)
	assert.Equal(t, optional.Some[int64](2), last)

	last, err = CursorFor(sparse).LastIndex(100)
	require.NoError(t, err)
	assert.Equal(t, optional.Some[int64](5), last)

	last, err = CursorFor(NewArray()).LastIndex(0)
	require.NoError(t, err)
	assert.True(t, last.Empty())
}

func TestArrayProbes(t *testing.T) {
	t.Parallel()

	arr := NewArray(Number(1), nil)

	ok, err := arr.HasIndex(1)
	require.NoError(t, err)
	assert.False(t, ok)

	v, err := arr.GetIndex(1)
	require.NoError(t, err)
	assert.Equal(t, Undefined, v)

	v, err = arr.GetIndex(7)
	require.NoError(t, err)
	assert.Equal(t, Undefined, v)

	length, err := LengthOfArrayLike(arr)
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)
}

func TestScanCursor(t *testing.T) {
	t.Parallel()

	obj := NewArrayLike(Number(6), map[int64]Value{1: String("a"), 4: String("b"), 9: String("c")})

	assert.Equal(t, []int64{1, 4}, presentIndexes(t, CursorFor(obj), 6))

	last, err := CursorFor(obj).LastIndex(6)
	require.NoError(t, err)
	assert.Equal(t, optional.Some[int64](5), last)
}

type failingObject struct {
	ordinary
}

func (failingObject) TypeOf() string { return "object" }

func (failingObject) HasIndex(int64) (bool, error) {
	return false, errors.Throw("trap")
}

func TestScanCursorPropagatesErrors(t *testing.T) {
	t.Parallel()

	_, err := CursorFor(failingObject{}).FirstIndex(3)

	thrown, ok := errors.ThrownValue(err)
	require.True(t, ok)
	assert.Equal(t, "trap", thrown)
}

func TestIsConcatSpreadable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Value
		want bool
	}{
		{"array", NewArray(), true},
		{"array-like", NewArrayLike(Number(1), nil), false},
		{"flagged array-like", NewArrayLike(Number(1), nil).WithConcatSpreadable(true), true},
		{"unflagged array-like", NewArrayLike(Number(1), nil).WithConcatSpreadable(false), false},
		{"primitive", String("ab"), false},
		{"function", NewFunction("f", nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := IsConcatSpreadable(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFunction(t *testing.T) {
	t.Parallel()

	double := NewFunctionWithLength("double", 1, func(_ Value, args []Value) (Value, error) {
		return Number(float64(args[0].(Number)) * 2), nil //nolint:forcetypeassert
	})

	assert.True(t, IsCallable(double))
	assert.False(t, IsCallable(NewArray()))
	assert.Equal(t, "function", double.TypeOf())

	res, err := Call(double, Undefined, Number(4))
	require.NoError(t, err)
	assert.Equal(t, Number(8), res)

	length, err := double.Length()
	require.NoError(t, err)
	assert.Equal(t, Number(1), length)

	res, err = NewFunction("noop", func(Value, []Value) (Value, error) { return nil, nil }).Call(Undefined)
	require.NoError(t, err)
	assert.Equal(t, Undefined, res)

	_, err = Call(Number(1), Undefined)
	require.ErrorIs(t, err, errors.ErrTypeError)
}
