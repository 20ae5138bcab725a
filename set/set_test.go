package set

import (
	"hash"
	"math"
	"sync"
	"testing"

	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/amp-labs/amp-tuple/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTuple(t *testing.T, values ...jsvalue.Value) *tuple.Tuple {
	t.Helper()

	tup, err := tuple.New(values...)
	require.NoError(t, err)

	return tup
}

func TestTupleSetDeduplicatesByContent(t *testing.T) {
	t.Parallel()

	s := NewSet[*tuple.Tuple](hashing.Xxh3)

	first := mustTuple(t, jsvalue.Number(1), jsvalue.String("a"))

	require.NoError(t, s.AddAll(
		first,
		mustTuple(t, jsvalue.Number(1), jsvalue.String("a")),
		mustTuple(t, jsvalue.String("a"), jsvalue.Number(1)),
		mustTuple(t, jsvalue.Number(math.Copysign(0, -1))),
		mustTuple(t, jsvalue.Number(0)),
		tuple.Empty(),
	))

	assert.Equal(t, 4, s.Size())

	contains, err := s.Contains(mustTuple(t, jsvalue.Number(1), jsvalue.String("a")))
	require.NoError(t, err)
	assert.True(t, contains)

	for _, e := range s.Entries() {
		if e.Equals(first) {
			assert.Same(t, first, e)
		}
	}

	require.NoError(t, s.Remove(mustTuple(t, jsvalue.Number(0))))
	assert.Equal(t, 3, s.Size())

	contains, err = s.Contains(mustTuple(t, jsvalue.Number(0)))
	require.NoError(t, err)
	assert.False(t, contains)

	s.Clear()
	assert.Equal(t, 0, s.Size())
}

func TestUnionAndIntersection(t *testing.T) {
	t.Parallel()

	a := NewSet[hashing.HashableString](hashing.Sha256)
	b := NewSet[hashing.HashableString](hashing.Sha256)

	require.NoError(t, a.AddAll("x", "y"))
	require.NoError(t, b.AddAll("y", "z"))

	union, err := a.Union(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []hashing.HashableString{"x", "y", "z"}, union.Entries())

	intersection, err := a.Intersection(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []hashing.HashableString{"y"}, intersection.Entries())

	var seen []hashing.HashableString
	for v := range union.Seq() {
		seen = append(seen, v)
	}

	assert.Len(t, seen, 3)
}

// constant hashes everything to the same bucket.
type constant string

func (constant) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte("same"))

	return err
}

func (c constant) Equals(other constant) bool {
	return c == other
}

func TestHashCollision(t *testing.T) {
	t.Parallel()

	s := NewSet[constant](hashing.Xxh64)

	require.NoError(t, s.Add("a"))
	require.ErrorIs(t, s.Add("b"), ErrHashCollision)

	contains, err := s.Contains("b")
	require.ErrorIs(t, err, ErrHashCollision)
	assert.True(t, contains)
}

func TestHashErrorsPropagate(t *testing.T) {
	t.Parallel()

	s := NewSet[*tuple.Tuple](hashing.Xxh3)

	err := s.Add(mustTuple(t, unknownPrimitive{}))
	require.ErrorIs(t, err, tuple.ErrUnhashable)
}

type unknownPrimitive struct{}

func (unknownPrimitive) TypeOf() string { return "record" }

func TestThreadSafeSet(t *testing.T) {
	t.Parallel()

	s := NewThreadSafeSet(NewSet[*tuple.Tuple](hashing.Xxh3))
	assert.Same(t, s, NewThreadSafeSet(s))
	assert.Nil(t, NewThreadSafeSet[*tuple.Tuple](nil))

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := range 50 {
				tup, err := tuple.New(jsvalue.Number(float64(j)), jsvalue.Bool(i%2 == 0))
				assert.NoError(t, err)
				assert.NoError(t, s.Add(tup))
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 100, s.Size())

	count := 0
	for range s.Seq() {
		count++
	}

	assert.Equal(t, 100, count)

	union, err := s.Union(NewSet[*tuple.Tuple](hashing.Xxh3))
	require.NoError(t, err)
	assert.Equal(t, 100, union.Size())
}
