// Package envutil reads typed configuration out of environment variables.
// Every reader takes a context so that tests and embedders can override
// variables with WithEnvOverride instead of mutating the process environment.
package envutil

import (
	"context"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-tuple/xform"
	"golang.org/x/text/language"
)

func get(ctx context.Context, key string) Reader[string] {
	if ctx != nil {
		if val, ok := getEnvOverride(ctx, key); ok {
			return Reader[string]{key: key, present: true, value: val}
		}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(ctx, key), xform.TrimString), xform.Bool), opts)
}

// SlogLevel returns a Reader for a log level; case and surrounding space are ignored.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.SlogLevel), opts)
}

// LanguageTag returns a Reader for a BCP 47 locale such as "en-US".
func LanguageTag(ctx context.Context, key string, opts ...Option[language.Tag]) Reader[language.Tag] {
	return apply(Map(Map(get(ctx, key), xform.TrimString), xform.LanguageTag), opts)
}
