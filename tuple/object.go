package tuple

import (
	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/amp-labs/amp-tuple/optional"
)

// Object is the wrapped-object view of a Tuple. It exposes the elements as indexed
// properties and a "length", so generic array-like consumers can read a Tuple.
type Object struct {
	tuple *Tuple
}

// NewObject wraps t.
func NewObject(t *Tuple) *Object {
	return &Object{tuple: t}
}

// Tuple returns the wrapped Tuple.
func (o *Object) Tuple() *Tuple {
	return o.tuple
}

func (*Object) TypeOf() string { return "object" }

func (o *Object) HasIndex(index int64) (bool, error) {
	return index >= 0 && index < int64(o.tuple.Len()), nil
}

func (o *Object) GetIndex(index int64) (jsvalue.Value, error) {
	if index < 0 || index >= int64(o.tuple.Len()) {
		return jsvalue.Undefined, nil
	}

	return o.tuple.elements[index], nil
}

func (o *Object) Length() (jsvalue.Value, error) {
	return jsvalue.Number(o.tuple.Len()), nil
}

func (o *Object) FirstIndex(length int64) (optional.Value[int64], error) {
	return o.NextIndex(-1, length)
}

func (o *Object) NextIndex(after, length int64) (optional.Value[int64], error) {
	next := max(after+1, 0)
	if next >= min(length, int64(o.tuple.Len())) {
		return optional.None[int64](), nil
	}

	return optional.Some(next), nil
}

func (o *Object) LastIndex(length int64) (optional.Value[int64], error) {
	last := min(length, int64(o.tuple.Len())) - 1
	if last < 0 {
		return optional.None[int64](), nil
	}

	return optional.Some(last), nil
}

// ConcatSpreadable reports wrapped Tuples as always spreadable.
func (o *Object) ConcatSpreadable() (optional.Value[bool], error) {
	return optional.Some(true), nil
}

// ToPrimitive unwraps the view.
func (o *Object) ToPrimitive() (jsvalue.Value, error) {
	return o.tuple, nil
}

func (o *Object) String() string {
	if o == nil {
		return "Object(<nil>)"
	}

	return "Object(" + o.tuple.String() + ")"
}

// ThisValue coerces a receiver to the Tuple it is or wraps.
func ThisValue(v jsvalue.Value) (*Tuple, error) {
	switch x := v.(type) {
	case *Tuple:
		if x != nil {
			return x, nil
		}
	case *Object:
		if x != nil && x.tuple != nil {
			return x.tuple, nil
		}
	}

	return nil, errors.ErrIncompatibleReceiver
}

// asTuple is ThisValue without the error, for arguments that may or may not be Tuples.
func asTuple(v jsvalue.Value) (*Tuple, bool) {
	t, err := ThisValue(v)

	return t, err == nil
}
