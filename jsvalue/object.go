package jsvalue

import (
	"fmt"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/optional"
)

// Object is a property-bearing host value. Only integer-keyed properties and "length"
// are visible to the tuple engine. Any of the probes may run user code and fail.
type Object interface {
	Value

	// HasIndex reports whether the property named by index is present.
	HasIndex(index int64) (bool, error)

	// GetIndex reads the property named by index; absent properties read as Undefined.
	GetIndex(index int64) (Value, error)

	// Length reads the raw "length" property, before any ToLength conversion.
	Length() (Value, error)
}

// Callable is an object that can be invoked.
type Callable interface {
	Object

	Call(this Value, args ...Value) (Value, error)
}

// ConcatSpreadable is implemented by objects that carry an explicit
// spreadability flag (the well-known isConcatSpreadable symbol). None means the
// flag is undefined and spreadability falls back to IsArray.
type ConcatSpreadable interface {
	ConcatSpreadable() (optional.Value[bool], error)
}

// ArrayChecker is implemented by exotic objects that answer IsArray themselves.
type ArrayChecker interface {
	IsArray() bool
}

// PrimitiveConverter is implemented by objects with a custom primitive conversion.
type PrimitiveConverter interface {
	ToPrimitive() (Value, error)
}

// StringConverter is implemented by primitives that know their own string form.
type StringConverter interface {
	ToJSString() (string, error)
}

// ValueEqualer is implemented by values compared by content rather than identity.
type ValueEqualer interface {
	EqualsValue(other Value) bool
}

// ordinary supplies the probes of an object without indexed properties.
type ordinary struct{}

func (ordinary) HasIndex(int64) (bool, error)  { return false, nil }
func (ordinary) GetIndex(int64) (Value, error) { return Undefined, nil }
func (ordinary) Length() (Value, error)        { return Undefined, nil }

// Function adapts a Go func to a host callable. Functions are compared by identity.
type Function struct {
	ordinary

	name   string
	length int
	fn     func(this Value, args []Value) (Value, error)
}

// NewFunction wraps fn as a callable named name.
func NewFunction(name string, fn func(this Value, args []Value) (Value, error)) *Function {
	return &Function{name: name, length: 0, fn: fn}
}

// NewFunctionWithLength is NewFunction with an explicit arity for the "length" property.
func NewFunctionWithLength(name string, length int, fn func(this Value, args []Value) (Value, error)) *Function {
	return &Function{name: name, length: length, fn: fn}
}

func (*Function) TypeOf() string { return "function" }

func (f *Function) Name() string {
	return f.name
}

func (f *Function) Length() (Value, error) {
	return Number(f.length), nil
}

func (f *Function) Call(this Value, args ...Value) (Value, error) {
	if f.fn == nil {
		return Undefined, nil
	}

	res, err := f.fn(this, args)
	if err != nil {
		return nil, err
	}

	if res == nil {
		return Undefined, nil
	}

	return res, nil
}

func (f *Function) String() string {
	return "function " + f.name + "() { [native code] }"
}

// IsCallable reports whether v can be invoked.
func IsCallable(v Value) bool {
	_, ok := v.(Callable)

	return ok
}

// Call invokes f with the given receiver and arguments.
func Call(f Value, this Value, args ...Value) (Value, error) {
	c, ok := f.(Callable)
	if !ok {
		return nil, errors.TypeError("%s is not a function", Inspect(f))
	}

	return c.Call(this, args...)
}

// ArrayLike is an ordinary host object with integer-keyed properties and an explicit
// "length" property. It is the generic, non-array input of the concatenation engine.
type ArrayLike struct {
	props      map[int64]Value
	length     Value
	spreadable optional.Value[bool]
}

// NewArrayLike returns an object whose "length" property is length and whose
// indexed properties are props.
func NewArrayLike(length Value, props map[int64]Value) *ArrayLike {
	if length == nil {
		length = Undefined
	}

	copied := make(map[int64]Value, len(props))
	for k, v := range props {
		copied[k] = v
	}

	return &ArrayLike{props: copied, length: length, spreadable: optional.None[bool]()}
}

// WithConcatSpreadable sets the isConcatSpreadable flag on the object.
func (o *ArrayLike) WithConcatSpreadable(spreadable bool) *ArrayLike {
	o.spreadable = optional.Some(spreadable)

	return o
}

func (*ArrayLike) TypeOf() string { return "object" }

func (o *ArrayLike) HasIndex(index int64) (bool, error) {
	_, ok := o.props[index]

	return ok, nil
}

func (o *ArrayLike) GetIndex(index int64) (Value, error) {
	if v, ok := o.props[index]; ok {
		return v, nil
	}

	return Undefined, nil
}

func (o *ArrayLike) Length() (Value, error) {
	return o.length, nil
}

func (o *ArrayLike) ConcatSpreadable() (optional.Value[bool], error) {
	return o.spreadable, nil
}

func (o *ArrayLike) String() string {
	return fmt.Sprintf("[object Object length=%s]", Inspect(o.length))
}

// IsArray reports whether v is a host array.
func IsArray(v Value) bool {
	switch x := v.(type) {
	case *Array:
		return true
	case ArrayChecker:
		return x.IsArray()
	default:
		return false
	}
}

// IsConcatSpreadable reports whether concatenation spreads v into its elements.
// An explicit flag wins; otherwise only arrays spread.
func IsConcatSpreadable(v Value) (bool, error) {
	if !IsObject(v) {
		return false, nil
	}

	if cs, ok := v.(ConcatSpreadable); ok {
		flag, err := cs.ConcatSpreadable()
		if err != nil {
			return false, err
		}

		if spread, ok := flag.Get(); ok {
			return spread, nil
		}
	}

	return IsArray(v), nil
}

// LengthOfArrayLike reads and converts the "length" property of obj.
func LengthOfArrayLike(obj Object) (int64, error) {
	raw, err := obj.Length()
	if err != nil {
		return 0, err
	}

	return ToLength(raw)
}
