package tuple

import (
	"slices"

	"github.com/amp-labs/amp-tuple/jsvalue"
)

// Concat returns t followed by every argument. Tuples and spreadable array-likes
// contribute their present elements in index order (holes are skipped); any other
// argument is appended as a single element and must be a primitive.
func (t *Tuple) Concat(args ...jsvalue.Value) (*Tuple, error) {
	out := slices.Clone(t.elements)

	for _, arg := range args {
		if nested, ok := asTuple(arg); ok {
			if err := checkSize(int64(len(out)) + int64(nested.Len())); err != nil {
				return nil, err
			}

			out = append(out, nested.elements...)

			continue
		}

		spreadable, err := jsvalue.IsConcatSpreadable(arg)
		if err != nil {
			return nil, err
		}

		if !spreadable {
			if err := CheckElement(arg); err != nil {
				return nil, err
			}

			if err := checkSize(int64(len(out)) + 1); err != nil {
				return nil, err
			}

			out = append(out, arg)

			continue
		}

		obj, _ := arg.(jsvalue.Object)

		if out, err = spread(out, obj); err != nil {
			return nil, err
		}
	}

	return newTuple(out), nil
}

// spread appends the present elements of obj to out.
func spread(out []jsvalue.Value, obj jsvalue.Object) ([]jsvalue.Value, error) {
	length, err := jsvalue.LengthOfArrayLike(obj)
	if err != nil {
		return nil, err
	}

	if err := checkSize(int64(len(out)) + length); err != nil {
		return nil, err
	}

	switch length {
	case 0:
		return out, nil
	case 1:
		return appendIfPresent(out, obj, 0)
	}

	cursor := jsvalue.CursorFor(obj)

	last, err := cursor.LastIndex(length)
	if err != nil {
		return nil, err
	}

	lastIndex, ok := last.Get()
	if !ok {
		return out, nil
	}

	next, err := cursor.FirstIndex(length)
	if err != nil {
		return nil, err
	}

	for {
		i, ok := next.Get()
		if !ok || i > lastIndex {
			return out, nil
		}

		v, err := obj.GetIndex(i)
		if err != nil {
			return nil, err
		}

		if err := CheckElement(v); err != nil {
			return nil, err
		}

		out = append(out, v)

		if i == lastIndex {
			return out, nil
		}

		if next, err = cursor.NextIndex(i, length); err != nil {
			return nil, err
		}
	}
}

func appendIfPresent(out []jsvalue.Value, obj jsvalue.Object, index int64) ([]jsvalue.Value, error) {
	present, err := obj.HasIndex(index)
	if err != nil || !present {
		return out, err
	}

	v, err := obj.GetIndex(index)
	if err != nil {
		return nil, err
	}

	if err := CheckElement(v); err != nil {
		return nil, err
	}

	return append(out, v), nil
}
