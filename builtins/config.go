package builtins

import (
	"context"

	"github.com/amp-labs/amp-tuple/envutil"
	"golang.org/x/text/language"
)

const (
	// DefaultSubsystem is the log subsystem used when TUPLE_SUBSYSTEM is unset.
	DefaultSubsystem = "tuple"
)

// Config holds the per-realm settings.
type Config struct {
	// Locale renders numbers in toLocaleString when the caller passes no locale.
	Locale language.Tag

	// Subsystem is attached to every log line a builtin emits.
	Subsystem string
}

// DefaultConfig renders in en-US and logs as "tuple".
func DefaultConfig() Config {
	return Config{
		Locale:    language.AmericanEnglish,
		Subsystem: DefaultSubsystem,
	}
}

// ConfigFromEnv reads TUPLE_LOCALE and TUPLE_SUBSYSTEM. Unset variables keep
// their DefaultConfig values; malformed ones are an error.
func ConfigFromEnv(ctx context.Context) (Config, error) {
	dfl := DefaultConfig()

	locale, err := envutil.LanguageTag(ctx, "TUPLE_LOCALE", envutil.Default(dfl.Locale)).Value()
	if err != nil {
		return Config{}, err
	}

	subsystem, err := envutil.String(ctx, "TUPLE_SUBSYSTEM", envutil.Default(dfl.Subsystem)).Value()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Locale:    locale,
		Subsystem: subsystem,
	}, nil
}
