// Package set provides value-equality hash sets. Elements are keyed by the hash of their
// content, so two distinct *tuple.Tuple values with equal elements occupy a single slot.
package set

import (
	"errors"
	"iter"
	"maps"

	"github.com/amp-labs/amp-tuple/compare"
	"github.com/amp-labs/amp-tuple/hashing"
)

// ErrHashCollision means two elements that are not Equal produced the same key.
var ErrHashCollision = errors.New("hashing collision")

// Collectable is what a Set stores: something that hashes its content and can
// confirm equality when two keys match.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// Set is an unordered collection of distinct elements. Distinctness is decided
// by the HashFunc first and confirmed with Equals.
type Set[T Collectable[T]] interface {
	// AddAll adds elements in order and stops at the first error.
	AddAll(elements ...T) error

	// Add inserts element. If an equal element is present it is kept and element is dropped.
	Add(element T) error

	// Remove deletes the element equal to element, if any.
	Remove(element T) error

	Clear()

	// Contains reports whether an equal element is present. A key match with a
	// non-equal element reports true together with ErrHashCollision.
	Contains(element T) (bool, error)

	Size() int

	// Entries returns the elements in no particular order.
	Entries() []T

	// Seq yields the elements in no particular order.
	Seq() iter.Seq[T]

	// Union is a new set with the elements of both.
	Union(other Set[T]) (Set[T], error)

	// Intersection is a new set with the receiver's elements that other also contains.
	Intersection(other Set[T]) (Set[T], error)
}

type hashSet[T Collectable[T]] struct {
	hash  hashing.HashFunc
	slots map[string]T
}

// NewSet returns an empty Set keyed by hash.
func NewSet[T Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &hashSet[T]{hash: hash, slots: make(map[string]T)}
}

// slot finds the key for element and whatever currently occupies it.
func (s *hashSet[T]) slot(element T) (key string, occupant T, taken bool, err error) {
	key, err = s.hash(element)
	if err != nil {
		return "", occupant, false, err
	}

	occupant, taken = s.slots[key]

	return key, occupant, taken, nil
}

func (s *hashSet[T]) AddAll(elements ...T) error {
	for _, element := range elements {
		if err := s.Add(element); err != nil {
			return err
		}
	}

	return nil
}

func (s *hashSet[T]) Add(element T) error {
	key, occupant, taken, err := s.slot(element)

	switch {
	case err != nil:
		return err
	case !taken:
		s.slots[key] = element

		return nil
	case compare.Equals(occupant, element):
		return nil
	default:
		return ErrHashCollision
	}
}

func (s *hashSet[T]) Remove(element T) error {
	key, occupant, taken, err := s.slot(element)
	if err != nil {
		return err
	}

	if taken && compare.Equals(occupant, element) {
		delete(s.slots, key)
	}

	return nil
}

func (s *hashSet[T]) Clear() {
	clear(s.slots)
}

func (s *hashSet[T]) Contains(element T) (bool, error) {
	_, occupant, taken, err := s.slot(element)

	switch {
	case err != nil:
		return false, err
	case !taken:
		return false, nil
	case compare.Equals(occupant, element):
		return true, nil
	default:
		return true, ErrHashCollision
	}
}

func (s *hashSet[T]) Size() int {
	return len(s.slots)
}

func (s *hashSet[T]) Entries() []T {
	out := make([]T, 0, len(s.slots))
	for element := range s.Seq() {
		out = append(out, element)
	}

	return out
}

func (s *hashSet[T]) Seq() iter.Seq[T] {
	return maps.Values(s.slots)
}

func (s *hashSet[T]) Union(other Set[T]) (Set[T], error) {
	out := NewSet[T](s.hash)

	for _, src := range []Set[T]{s, other} {
		if err := out.AddAll(src.Entries()...); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (s *hashSet[T]) Intersection(other Set[T]) (Set[T], error) {
	out := NewSet[T](s.hash)

	for element := range s.Seq() {
		found, err := other.Contains(element)
		if err != nil {
			return nil, err
		}

		if !found {
			continue
		}

		if err := out.Add(element); err != nil {
			return nil, err
		}
	}

	return out, nil
}
