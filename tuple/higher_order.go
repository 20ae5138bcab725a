package tuple

import (
	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
)

// callable fails with ErrCallableExpected unless fn can be invoked.
func callable(fn jsvalue.Value) (jsvalue.Callable, error) {
	c, ok := fn.(jsvalue.Callable)
	if !ok {
		return nil, errors.ErrCallableExpected
	}

	return c, nil
}

// each invokes fn as fn.call(thisArg, element, index, t) for every element, stopping
// when visit returns false.
func (t *Tuple) each(
	fn jsvalue.Value,
	thisArg jsvalue.Value,
	visit func(index int, element, result jsvalue.Value) (bool, error),
) error {
	c, err := callable(fn)
	if err != nil {
		return err
	}

	for i, v := range t.elements {
		res, err := c.Call(thisArg, v, jsvalue.Number(i), t)
		if err != nil {
			return err
		}

		more, err := visit(i, v, res)
		if err != nil {
			return err
		}

		if !more {
			return nil
		}
	}

	return nil
}

// Filter keeps the elements for which fn returns a truthy value.
func (t *Tuple) Filter(fn, thisArg jsvalue.Value) (*Tuple, error) {
	var out []jsvalue.Value

	err := t.each(fn, thisArg, func(_ int, element, result jsvalue.Value) (bool, error) {
		if jsvalue.ToBoolean(result) {
			out = append(out, element)
		}

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return newTuple(out), nil
}

// Map replaces every element with the result of fn. Results must be primitives.
func (t *Tuple) Map(fn, thisArg jsvalue.Value) (*Tuple, error) {
	out := make([]jsvalue.Value, 0, len(t.elements))

	err := t.each(fn, thisArg, func(_ int, _, result jsvalue.Value) (bool, error) {
		if err := CheckElement(result); err != nil {
			return false, err
		}

		out = append(out, result)

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return newTuple(out), nil
}

// Flat splices nested Tuples into the result, up to depth levels deep. An undefined
// depth means 1.
func (t *Tuple) Flat(depth jsvalue.Value) (*Tuple, error) {
	d := int64(1)

	if !jsvalue.IsUndefined(depth) {
		var err error
		if d, err = jsvalue.ToInteger(depth); err != nil {
			return nil, err
		}
	}

	return newTuple(t.flattenInto(nil, max(d, 0))), nil
}

func (t *Tuple) flattenInto(out []jsvalue.Value, depth int64) []jsvalue.Value {
	for _, v := range t.elements {
		if nested, ok := v.(*Tuple); ok && depth > 0 {
			out = nested.flattenInto(out, depth-1)

			continue
		}

		out = append(out, v)
	}

	return out
}

// FlatMap maps every element with fn and splices Tuple results one level deep.
func (t *Tuple) FlatMap(fn, thisArg jsvalue.Value) (*Tuple, error) {
	var out []jsvalue.Value

	err := t.each(fn, thisArg, func(_ int, _, result jsvalue.Value) (bool, error) {
		if err := CheckElement(result); err != nil {
			return false, err
		}

		if nested, ok := result.(*Tuple); ok {
			out = append(out, nested.elements...)
		} else {
			out = append(out, result)
		}

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return newTuple(out), nil
}
