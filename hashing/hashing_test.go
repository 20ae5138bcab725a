package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "simple bytes",
			input:    HashableBytes([]byte("hello")),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestXxh3AndXxh64_EmptyInput(t *testing.T) {
	t.Parallel()

	h3, err := Xxh3(HashableString(""))
	require.NoError(t, err)
	assert.Equal(t, "2d06800538d394c2", h3)

	h64, err := Xxh64(HashableString(""))
	require.NoError(t, err)
	assert.Equal(t, "ef46db3751d8e999", h64)
}

func TestFastHashes_Consistency(t *testing.T) {
	t.Parallel()

	for _, fn := range []HashFunc{Xxh3, Xxh64, Sha256} {
		a, err := fn(HashableString("tuple"))
		require.NoError(t, err)

		b, err := fn(HashableBytes("tuple"))
		require.NoError(t, err)

		c, err := fn(HashableString("tuples"))
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.NotEqual(t, a, c)
	}
}

// failingHashable fails before writing anything.
type failingHashable struct {
	err error
}

func (m failingHashable) UpdateHash(h hash.Hash) error {
	if m.err != nil {
		return m.err
	}

	_, err := h.Write([]byte("test"))

	return err
}

var errHashTest = errors.New("hash error")

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	broken := failingHashable{err: errHashTest}

	for name, fn := range map[string]HashFunc{"sha256": Sha256, "xxh3": Xxh3, "xxh64": Xxh64} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := fn(broken)
			require.ErrorIs(t, err, errHashTest)
			assert.Empty(t, result)
		})
	}
}

func TestHashableString(t *testing.T) {
	t.Parallel()

	assert.True(t, HashableString("abc").Equals("abc"))
	assert.False(t, HashableString("abc").Equals("abd"))
}
