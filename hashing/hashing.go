// Package hashing turns structured values into hash keys. A value opts in by
// implementing Hashable, writing a canonical encoding of its content.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc maps a Hashable to a string key. Equal content must give equal keys.
type HashFunc func(hashable Hashable) (string, error)

// Hashable writes its content into h. Two values that compare equal must
// write identical bytes.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 is the hex-encoded SHA-256 of the value's encoding.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 is the 64-bit XXH3 of the value's encoding. Prefer it for in-memory sets.
func Xxh3(hashable Hashable) (string, error) {
	return sum64(xxh3.New(), hashable)
}

// Xxh64 is the 64-bit XXH64 of the value's encoding.
func Xxh64(hashable Hashable) (string, error) {
	return sum64(xxhash.New64(), hashable)
}

func sum64(h hash.Hash64, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}

// HashableString is a string usable as a set element.
type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableBytes hashes its raw bytes.
type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}
