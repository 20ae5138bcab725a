package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key/value pairs to err. When the error is later
// logged under any key through a configured logger, the pairs are emitted as
// top-level attributes next to it. Returns nil if err is nil.
//
//	return logger.AnnotateError(err, "builtin", "sorted", "length", n)
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Time{}, slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &slogError{err: err, attrs: attrs}
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string { return s.err.Error() }

func (s *slogError) Unwrap() error { return s.err }

var _ error = (*slogError)(nil)

// slogErrorLogger unpacks annotated errors found in a record's attributes.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		base  []slog.Attr
		extra []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			var se *slogError
			if errors.As(err, &se) {
				base = append(base, slog.Any(attr.Key, se.err))
				extra = append(extra, se.attrs...)

				return true
			}
		}

		base = append(base, attr)

		return true
	})

	if len(extra) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(base...)
	r.AddAttrs(extra...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
