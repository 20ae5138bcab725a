// Package xform holds small string transformers that are chained together by
// envutil readers. Each transformer has the shape func(A) (B, error).
package xform

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// OneOf returns a transformer that accepts only the given choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v", ErrInvalidChoice, value)
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

// LanguageTag parses a BCP 47 tag such as "en-US" or "de".
func LanguageTag(value string) (language.Tag, error) {
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %w", ErrInvalidLanguageTag, value, err)
	}

	return tag, nil
}
