package envutil

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a value read from an environment variable, together with whether
// it was present and whatever went wrong parsing it.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key returns the name of the environment variable.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the parsed value, or an error if it is missing or malformed.
func (e Reader[A]) Value() (A, error) { //nolint:ireturn
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrElse returns the value, or v if it is missing or malformed. A
// malformed value is logged before falling back.
func (e Reader[A]) ValueOrElse(v A) A { //nolint:ireturn
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// HasValue reports whether the variable was set and parsed cleanly.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

func (e Reader[A]) String() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	case e.present:
		return fmt.Sprintf("%s=%v", e.key, e.value)
	default:
		return e.key + "=<not set>"
	}
}

// WithErrorIfMissing returns a Reader whose Value fails with err when the
// variable is unset. Present values and existing errors are kept.
func (e Reader[A]) WithErrorIfMissing(err error) Reader[A] { //nolint:ireturn
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{key: e.key, err: err}
}

// WithDefault returns a Reader holding v when the variable is unset.
func (e Reader[A]) WithDefault(v A) Reader[A] { //nolint:ireturn
	if e.present {
		return e
	}

	return Reader[A]{key: e.key, present: true, err: e.err, value: v}
}

// Map transforms the value without changing its type.
func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] { //nolint:ireturn
	return Map(e, f)
}

// Map transforms a present, error-free value. Missing values and errors pass through.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{key: env.key, present: env.present, err: env.err}
	}

	val, err := f(env.value)

	return Reader[B]{key: env.key, present: true, err: err, value: val}
}
