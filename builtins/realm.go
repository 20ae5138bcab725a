// Package builtins exposes the Tuple engine the way a script host sees it: the
// Tuple.prototype methods looked up by name and invoked with an arbitrary
// receiver, plus the Tuple function and its statics. Every prototype call is
// counted and failed calls are logged at debug.
package builtins

import (
	"context"
	"fmt"
	"slices"

	"github.com/amp-labs/amp-tuple/contexts"
	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/amp-labs/amp-tuple/logger"
	"github.com/amp-labs/amp-tuple/tuple"
)

// Realm is one set of Tuple builtins bound to a Config. A Realm is immutable
// after construction and may be shared between goroutines.
type Realm struct {
	config    Config
	builtins  []Builtin
	prototype map[string]Builtin
}

// NewRealm builds the builtin table for cfg.
func NewRealm(cfg Config) *Realm {
	table := prototypeTable()

	r := &Realm{
		config:    cfg,
		builtins:  table,
		prototype: make(map[string]Builtin, len(table)),
	}

	for _, b := range table {
		r.prototype[b.Name] = b
	}

	return r
}

// Config returns the settings the realm was built with.
func (r *Realm) Config() Config {
	return r.config
}

// Prototype lists the Tuple.prototype properties in declaration order.
func (r *Realm) Prototype() []Builtin {
	return slices.Clone(r.builtins)
}

// Lookup finds a prototype property by name.
func (r *Realm) Lookup(name string) (Builtin, bool) {
	b, ok := r.prototype[name]

	return b, ok
}

// Invoke calls Tuple.prototype[name] with the given receiver. The receiver
// must be a Tuple or a Tuple wrapper object. Missing trailing arguments read
// as undefined.
func (r *Realm) Invoke(ctx context.Context, name string, this jsvalue.Value, args ...jsvalue.Value) (jsvalue.Value, error) {
	ctx = logger.WithBuiltin(logger.WithSubsystem(contexts.EnsureContext(ctx), r.config.Subsystem), name)

	b, ok := r.prototype[name]
	if !ok {
		return nil, errors.TypeError("Tuple.prototype.%s is not a function", name)
	}

	result, err := r.call(b, this, args)

	builtinCalls.WithLabelValues(name, outcome(err)).Inc()

	if err != nil {
		err = logger.AnnotateError(err, "receiver", jsvalue.Inspect(this), "argc", len(args))
		logger.Get(ctx).Debug("builtin failed", "error", err)

		return nil, err
	}

	return result, nil
}

func (r *Realm) call(b Builtin, this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, error) {
	t, err := tuple.ThisValue(this)
	if err != nil {
		return nil, fmt.Errorf("Tuple.prototype.%s: %w", b.Name, err)
	}

	if b.Getter {
		args = nil
	}

	return b.fn(r, t, args)
}

// Method returns Tuple.prototype[name] as a host function. The function
// invokes the builtin with a background context.
func (r *Realm) Method(name string) (*jsvalue.Function, bool) {
	b, ok := r.prototype[name]
	if !ok || b.Getter {
		return nil, false
	}

	return jsvalue.NewFunctionWithLength(name, b.Length, func(this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, error) {
		return r.Invoke(context.Background(), name, this, args...)
	}), true
}

// Tuple implements Tuple(...items): a new Tuple holding items, each of which
// must be a primitive.
func (r *Realm) Tuple(items ...jsvalue.Value) (*tuple.Tuple, error) {
	return tuple.New(items...)
}

// Of implements Tuple.of. It behaves exactly like Tuple(...items).
func (r *Realm) Of(items ...jsvalue.Value) (*tuple.Tuple, error) {
	return tuple.New(items...)
}

// IsTuple implements Tuple.isTuple: true for Tuples and Tuple wrapper objects.
func (r *Realm) IsTuple(v jsvalue.Value) bool {
	_, err := tuple.ThisValue(v)

	return err == nil
}

// Construct implements new Tuple(...), which always fails.
func (r *Realm) Construct(...jsvalue.Value) (jsvalue.Value, error) {
	return nil, errors.TypeError("Tuple is not a constructor")
}

// Function returns the Tuple function as a host callable, so scripts can pass
// it around like any other function value.
func (r *Realm) Function() *jsvalue.Function {
	return jsvalue.NewFunction("Tuple", func(_ jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, error) {
		return tupleResult(r.Tuple(args...))
	})
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	if _, ok := errors.ThrownValue(err); ok {
		return "thrown"
	}

	switch {
	case errors.IsTypeError(err):
		return "type_error"
	case errors.IsRangeError(err):
		return "range_error"
	default:
		return "error"
	}
}
