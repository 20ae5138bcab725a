package envutil

import (
	"context"

	"github.com/amp-labs/amp-tuple/contexts"
)

type envContextKey string

// WithEnvOverride returns a context in which key reads as value, regardless of
// what the process environment holds. Readers built from that context see the override.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return contexts.WithValue[envContextKey, string](ctx, envContextKey(key), value)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	return contexts.GetValue[envContextKey, string](ctx, envContextKey(key))
}
