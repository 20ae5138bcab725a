package builtins

import (
	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/amp-labs/amp-tuple/optional"
	"github.com/amp-labs/amp-tuple/tuple"
	"github.com/amp-labs/amp-tuple/xform"
)

// method is the body of a prototype builtin. The receiver has already been
// coerced; args are exactly what the caller passed.
type method func(r *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error)

// Builtin describes one Tuple.prototype property.
type Builtin struct {
	Name string

	// Length is the function's declared arity, as reported by its length property.
	Length int

	// Getter marks accessor properties such as length; their args are ignored.
	Getter bool

	fn method
}

// arg returns args[i], or undefined when the caller passed fewer arguments.
func arg(args []jsvalue.Value, i int) jsvalue.Value {
	if i < len(args) {
		return args[i]
	}

	return jsvalue.Undefined
}

// optionalArg separates a missing argument from an explicit undefined.
func optionalArg(args []jsvalue.Value, i int) optional.Value[jsvalue.Value] {
	if i < len(args) {
		return optional.Some(args[i])
	}

	return optional.None[jsvalue.Value]()
}

func tupleResult(t *tuple.Tuple, err error) (jsvalue.Value, error) {
	if err != nil {
		return nil, err
	}

	return t, nil
}

func indexResult(i int64, err error) (jsvalue.Value, error) {
	if err != nil {
		return nil, err
	}

	return jsvalue.Number(i), nil
}

func boolResult(b bool, err error) (jsvalue.Value, error) {
	if err != nil {
		return nil, err
	}

	return jsvalue.Bool(b), nil
}

func stringResult(s string, err error) (jsvalue.Value, error) {
	if err != nil {
		return nil, err
	}

	return jsvalue.String(s), nil
}

// callback adapts the (fn, thisArg) family.
func callback[R any](
	op func(t *tuple.Tuple, fn, thisArg jsvalue.Value) (R, error),
	wrap func(R, error) (jsvalue.Value, error),
) method {
	return func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
		return wrap(op(t, arg(args, 0), arg(args, 1)))
	}
}

func valueResult(v jsvalue.Value, err error) (jsvalue.Value, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}

func prototypeTable() []Builtin {
	return []Builtin{
		{Name: "length", Getter: true, fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return jsvalue.Number(t.Len()), nil
		}},
		{Name: "valueOf", fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return t, nil
		}},
		{Name: "popped", fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return t.Popped(), nil
		}},
		{Name: "pushed", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return tupleResult(t.Pushed(args...))
		}},
		{Name: "shifted", fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return t.Shifted(), nil
		}},
		{Name: "unshifted", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return tupleResult(t.Unshifted(args...))
		}},
		{Name: "reversed", fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return t.Reversed(), nil
		}},
		{Name: "sorted", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return tupleResult(t.Sorted(arg(args, 0)))
		}},
		{Name: "spliced", Length: 3, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) { //nolint:mnd
			return tupleResult(t.Spliced(args...))
		}},
		{Name: "concat", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return tupleResult(t.Concat(args...))
		}},
		{Name: "includes", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return boolResult(t.Includes(arg(args, 0), arg(args, 1)))
		}},
		{Name: "indexOf", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return indexResult(t.IndexOf(arg(args, 0), arg(args, 1)))
		}},
		{Name: "lastIndexOf", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return indexResult(t.LastIndexOf(arg(args, 0), optionalArg(args, 1)))
		}},
		{Name: "join", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return stringResult(t.Join(arg(args, 0)))
		}},
		{Name: "slice", Length: 2, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) { //nolint:mnd
			return tupleResult(t.Slice(arg(args, 0), arg(args, 1)))
		}},
		{Name: "toString", fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return stringResult(t.ToString())
		}},
		{Name: "toLocaleString", fn: toLocaleString},
		{Name: "entries", fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return t.Entries(), nil
		}},
		{Name: "keys", fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return t.Keys(), nil
		}},
		{Name: "values", fn: func(_ *Realm, t *tuple.Tuple, _ []jsvalue.Value) (jsvalue.Value, error) {
			return t.Values(), nil
		}},
		{Name: "every", Length: 1, fn: callback((*tuple.Tuple).Every, boolResult)},
		{Name: "some", Length: 1, fn: callback((*tuple.Tuple).Some, boolResult)},
		{Name: "find", Length: 1, fn: callback((*tuple.Tuple).Find, valueResult)},
		{Name: "findIndex", Length: 1, fn: callback((*tuple.Tuple).FindIndex, indexResult)},
		{Name: "filter", Length: 1, fn: callback((*tuple.Tuple).Filter, tupleResult)},
		{Name: "map", Length: 1, fn: callback((*tuple.Tuple).Map, tupleResult)},
		{Name: "flatMap", Length: 1, fn: callback((*tuple.Tuple).FlatMap, tupleResult)},
		{Name: "forEach", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			if err := t.ForEach(arg(args, 0), arg(args, 1)); err != nil {
				return nil, err
			}

			return jsvalue.Undefined, nil
		}},
		{Name: "flat", fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return tupleResult(t.Flat(arg(args, 0)))
		}},
		{Name: "reduce", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return valueResult(t.Reduce(arg(args, 0), optionalArg(args, 1)))
		}},
		{Name: "reduceRight", Length: 1, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
			return valueResult(t.ReduceRight(arg(args, 0), optionalArg(args, 1)))
		}},
		{Name: "with", Length: 2, fn: func(_ *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) { //nolint:mnd
			return tupleResult(t.With(arg(args, 0), arg(args, 1)))
		}},
	}
}

// toLocaleString renders with the realm locale unless the caller names one.
func toLocaleString(r *Realm, t *tuple.Tuple, args []jsvalue.Value) (jsvalue.Value, error) {
	tag := r.config.Locale

	if locales := arg(args, 0); !jsvalue.IsUndefined(locales) {
		name, err := jsvalue.ToString(locales)
		if err != nil {
			return nil, err
		}

		tag, err = xform.LanguageTag(name)
		if err != nil {
			return nil, errors.RangeError("Incorrect locale information provided: %q", name)
		}
	}

	return stringResult(t.ToLocaleString(tag))
}
