package set

import (
	"iter"
	"sync"
)

// NewThreadSafeSet wraps s so it can be shared between goroutines. Writers take an
// exclusive lock, readers a shared one. Wrapping an already wrapped set is a no-op.
//
//	seen := set.NewThreadSafeSet(set.NewSet[*tuple.Tuple](hashing.Xxh3))
//	_ = seen.Add(t) // safe from any goroutine
func NewThreadSafeSet[T Collectable[T]](s Set[T]) Set[T] {
	if s == nil {
		return nil
	}

	if locked, ok := s.(*lockedSet[T]); ok {
		return locked
	}

	return &lockedSet[T]{inner: s}
}

type lockedSet[T Collectable[T]] struct {
	mu    sync.RWMutex
	inner Set[T]
}

func (l *lockedSet[T]) AddAll(elements ...T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.AddAll(elements...)
}

func (l *lockedSet[T]) Add(element T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Add(element)
}

func (l *lockedSet[T]) Remove(element T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Remove(element)
}

func (l *lockedSet[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.inner.Clear()
}

func (l *lockedSet[T]) Contains(element T) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.inner.Contains(element)
}

func (l *lockedSet[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.inner.Size()
}

func (l *lockedSet[T]) Entries() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.inner.Entries()
}

// Seq iterates over a snapshot taken under the read lock. Later changes are not
// visible to the iterator.
func (l *lockedSet[T]) Seq() iter.Seq[T] {
	snapshot := l.Entries()

	return func(yield func(T) bool) {
		for _, element := range snapshot {
			if !yield(element) {
				return
			}
		}
	}
}

// Union locks only the receiver; callers synchronize other themselves.
func (l *lockedSet[T]) Union(other Set[T]) (Set[T], error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	union, err := l.inner.Union(other)
	if err != nil {
		return nil, err
	}

	return NewThreadSafeSet(union), nil
}

// Intersection locks only the receiver; callers synchronize other themselves.
func (l *lockedSet[T]) Intersection(other Set[T]) (Set[T], error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	intersection, err := l.inner.Intersection(other)
	if err != nil {
		return nil, err
	}

	return NewThreadSafeSet(intersection), nil
}
