// Package contexts has typed helpers over context.Context values.
package contexts

import "context"

// EnsureContext returns the first non-nil context, or context.Background.
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// WithValue is a typed context.WithValue. A nil ctx starts from context.Background.
func WithValue[K any, V any](ctx context.Context, key K, value V) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, key, value)
}

// GetValue returns the value stored under key if it has type V.
func GetValue[K any, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(V)
	if !ok {
		return zero, false
	}

	return v, true
}
