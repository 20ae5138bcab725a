// Package logger configures the process-wide slog logger and derives
// per-call loggers that carry context attributes such as the subsystem and
// the builtin being evaluated.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/amp-tuple/contexts"
	"github.com/amp-labs/amp-tuple/envutil"
	"github.com/amp-labs/amp-tuple/lazy"
	"github.com/amp-labs/amp-tuple/xform"
)

// subsystem is the fallback reported when the context does not name one.
var subsystem atomic.Value //nolint:gochecknoglobals

var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	muteKey      contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	builtinKey   contextKey = "builtin"
	valuesKey    contextKey = "loggerValues"
)

// Options controls ConfigureLoggingWithOptions.
type Options struct {
	// Subsystem is the default value of the "subsystem" attribute.
	Subsystem string

	// JSON selects slog.JSONHandler over slog.TextHandler.
	JSON bool

	MinLevel slog.Level

	// LegacyLevel is the level used for output written through the log package.
	LegacyLevel slog.Level

	// Output defaults to os.Stdout.
	Output io.Writer
}

// ConfigureLoggingWithOptions installs a logger built from opts as the slog
// default, and routes the standard log package through it.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = &slogErrorLogger{inner: handler}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option adjusts the Options assembled by ConfigureLogging.
type Option func(*Options)

// WithOutput overrides LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging reads LOG_JSON, LOG_LEVEL, LEGACY_LOG_LEVEL and LOG_OUTPUT
// (stdout or stderr) and installs the resulting logger. Overrides placed on
// ctx with envutil.WithEnvOverride take precedence over the environment.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) (*slog.Logger, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	legacyLevel, err := envutil.SlogLevel(ctx, "LEGACY_LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	output, err := envutil.Map(envutil.String(ctx, "LOG_OUTPUT"), func(outName string) (io.Writer, error) {
		name, err := xform.OneOf("stdout", "stderr")(outName)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLogOutput, err)
		}

		if name == "stderr" {
			return os.Stderr, nil
		}

		return os.Stdout, nil
	}).WithDefault(os.Stdout).Value()
	if err != nil {
		return nil, err
	}

	options := Options{
		Subsystem:   app,
		JSON:        logJSON,
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
		Output:      output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithMuted silences every logger obtained from the returned context.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return contexts.WithValue(ctx, muteKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, _ := contexts.GetValue[contextKey, bool](ctx, muteKey)

	return muted
}

func WithSubsystem(ctx context.Context, name string) context.Context {
	return contexts.WithValue(ctx, subsystemKey, name)
}

// GetSubsystem returns the context's subsystem, falling back to the one
// configured by ConfigureLogging.
func GetSubsystem(ctx context.Context) string {
	if sub, ok := contexts.GetValue[contextKey, string](ctx, subsystemKey); ok {
		return sub
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// WithBuiltin records which builtin (e.g. "sorted") is running.
func WithBuiltin(ctx context.Context, name string) context.Context {
	return contexts.WithValue(ctx, builtinKey, name)
}

func GetBuiltin(ctx context.Context) (string, bool) {
	return contexts.GetValue[contextKey, string](ctx, builtinKey)
}

var hostname = lazy.New[string](func() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}

	return h
})

type nullHandler struct{}

func (n *nullHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n *nullHandler) Handle(context.Context, slog.Record) error { return nil }
func (n *nullHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n *nullHandler) WithGroup(string) slog.Handler             { return n }

var nullLogger = slog.New(&nullHandler{})

// Get returns the default logger decorated with whatever the first non-nil
// context carries. With no context, only the subsystem and host are attached.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := contexts.EnsureContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With(
		"subsystem", GetSubsystem(realCtx),
		"host", hostname.Get())

	if name, ok := GetBuiltin(realCtx); ok {
		logger = logger.With("builtin", name)
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}

// With returns a context whose loggers carry the extra key/value pairs.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	prev := getValues(ctx)
	vals := make([]any, 0, len(prev)+len(values))
	vals = append(vals, prev...)
	vals = append(vals, values...)

	return contexts.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := contexts.GetValue[contextKey, []any](ctx, valuesKey)

	return vals
}
