// Package lazy provides values that are computed on first use and shared afterwards.
package lazy

import (
	"sync"

	"go.uber.org/atomic"
)

// Of computes its value on the first Get. If the constructor panics the panic
// propagates and the next Get tries again.
type Of[T any] struct {
	mu     sync.Mutex
	done   atomic.Bool
	create func() T
	value  T
}

// New returns an Of that will call create at most once successfully.
func New[T any](create func() T) *Of[T] {
	return &Of[T]{create: create}
}

// Get returns the value, computing it if needed.
func (l *Of[T]) Get() T { //nolint:ireturn
	if l.done.Load() {
		return l.value
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.done.Load() {
		if l.create != nil {
			l.value = l.create()
		}

		l.create = nil
		l.done.Store(true)
	}

	return l.value
}

// Initialized reports whether Get has completed once. Meant for tests.
func (l *Of[T]) Initialized() bool {
	return l.done.Load()
}
