package tuple

import (
	"strings"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/amp-labs/amp-tuple/optional"
)

// startIndex resolves a fromIndex argument the way the forward searches do.
func (t *Tuple) startIndex(fromIndex jsvalue.Value) (int64, error) {
	n, err := jsvalue.ToInteger(fromIndex)
	if err != nil {
		return 0, err
	}

	if n >= 0 {
		return n, nil
	}

	return max(int64(len(t.elements))+n, 0), nil
}

// Includes reports whether search occurs at or after fromIndex, using SameValueZero.
func (t *Tuple) Includes(search, fromIndex jsvalue.Value) (bool, error) {
	if len(t.elements) == 0 {
		return false, nil
	}

	k, err := t.startIndex(fromIndex)
	if err != nil {
		return false, err
	}

	for ; k < int64(len(t.elements)); k++ {
		if jsvalue.SameValueZero(t.elements[k], search) {
			return true, nil
		}
	}

	return false, nil
}

// IndexOf returns the first index at or after fromIndex holding search, or -1.
func (t *Tuple) IndexOf(search, fromIndex jsvalue.Value) (int64, error) {
	if len(t.elements) == 0 {
		return -1, nil
	}

	k, err := t.startIndex(fromIndex)
	if err != nil {
		return 0, err
	}

	for ; k < int64(len(t.elements)); k++ {
		if jsvalue.IsStrictlyEqual(t.elements[k], search) {
			return k, nil
		}
	}

	return -1, nil
}

// LastIndexOf returns the last index at or before fromIndex holding search, or -1.
// A missing fromIndex searches from the end; an explicit undefined means 0.
func (t *Tuple) LastIndexOf(search jsvalue.Value, fromIndex optional.Value[jsvalue.Value]) (int64, error) {
	size := int64(len(t.elements))
	if size == 0 {
		return -1, nil
	}

	k := size - 1

	if from, ok := fromIndex.Get(); ok {
		n, err := jsvalue.ToInteger(from)
		if err != nil {
			return 0, err
		}

		if n >= 0 {
			k = min(n, size-1)
		} else {
			k = size + n
		}
	}

	for ; k >= 0; k-- {
		if jsvalue.IsStrictlyEqual(t.elements[k], search) {
			return k, nil
		}
	}

	return -1, nil
}

// Join renders the elements separated by separator ("," when undefined). Undefined and
// null render as empty strings.
func (t *Tuple) Join(separator jsvalue.Value) (string, error) {
	sep := ","

	if !jsvalue.IsUndefined(separator) {
		var err error
		if sep, err = jsvalue.ToString(separator); err != nil {
			return "", err
		}
	}

	return t.join(sep, jsvalue.ToString)
}

func (t *Tuple) join(sep string, render func(jsvalue.Value) (string, error)) (string, error) {
	var sb strings.Builder

	for i, v := range t.elements {
		if i > 0 {
			sb.WriteString(sep)
		}

		if jsvalue.IsNullish(v) {
			continue
		}

		s, err := render(v)
		if err != nil {
			return "", err
		}

		sb.WriteString(s)
	}

	return sb.String(), nil
}

// Every reports whether fn returns a truthy value for every element.
func (t *Tuple) Every(fn, thisArg jsvalue.Value) (bool, error) {
	all := true

	err := t.each(fn, thisArg, func(_ int, _, result jsvalue.Value) (bool, error) {
		all = jsvalue.ToBoolean(result)

		return all, nil
	})
	if err != nil {
		return false, err
	}

	return all, nil
}

// Some reports whether fn returns a truthy value for any element.
func (t *Tuple) Some(fn, thisArg jsvalue.Value) (bool, error) {
	found := false

	err := t.each(fn, thisArg, func(_ int, _, result jsvalue.Value) (bool, error) {
		found = jsvalue.ToBoolean(result)

		return !found, nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// Find returns the first element for which fn returns a truthy value, or Undefined.
func (t *Tuple) Find(fn, thisArg jsvalue.Value) (jsvalue.Value, error) {
	found := jsvalue.Undefined

	err := t.each(fn, thisArg, func(_ int, element, result jsvalue.Value) (bool, error) {
		if jsvalue.ToBoolean(result) {
			found = element

			return false, nil
		}

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// FindIndex returns the index of the first element for which fn returns a truthy
// value, or -1.
func (t *Tuple) FindIndex(fn, thisArg jsvalue.Value) (int64, error) {
	found := int64(-1)

	err := t.each(fn, thisArg, func(index int, _, result jsvalue.Value) (bool, error) {
		if jsvalue.ToBoolean(result) {
			found = int64(index)

			return false, nil
		}

		return true, nil
	})
	if err != nil {
		return 0, err
	}

	return found, nil
}

// ForEach invokes fn for every element.
func (t *Tuple) ForEach(fn, thisArg jsvalue.Value) error {
	return t.each(fn, thisArg, func(int, jsvalue.Value, jsvalue.Value) (bool, error) {
		return true, nil
	})
}

// Reduce folds the elements from the left with fn(accumulator, element, index, t).
func (t *Tuple) Reduce(fn jsvalue.Value, initial optional.Value[jsvalue.Value]) (jsvalue.Value, error) {
	order := make([]int, len(t.elements))
	for i := range order {
		order[i] = i
	}

	return t.fold(fn, initial, order)
}

// ReduceRight folds the elements from the right.
func (t *Tuple) ReduceRight(fn jsvalue.Value, initial optional.Value[jsvalue.Value]) (jsvalue.Value, error) {
	order := make([]int, len(t.elements))
	for i := range order {
		order[i] = len(order) - 1 - i
	}

	return t.fold(fn, initial, order)
}

func (t *Tuple) fold(fn jsvalue.Value, initial optional.Value[jsvalue.Value], order []int) (jsvalue.Value, error) {
	c, err := callable(fn)
	if err != nil {
		return nil, err
	}

	acc, ok := initial.Get()
	if !ok {
		if len(order) == 0 {
			return nil, errors.TypeError("Reduce of empty tuple with no initial value")
		}

		acc = t.elements[order[0]]
		order = order[1:]
	}

	for _, i := range order {
		if acc, err = c.Call(jsvalue.Undefined, acc, t.elements[i], jsvalue.Number(i), t); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
