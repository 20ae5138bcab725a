package tuple

import (
	"slices"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
)

// Popped returns t without its last element.
func (t *Tuple) Popped() *Tuple {
	if len(t.elements) <= 1 {
		return Empty()
	}

	return newTuple(slices.Clone(t.elements[:len(t.elements)-1]))
}

// Pushed returns t with values appended.
func (t *Tuple) Pushed(values ...jsvalue.Value) (*Tuple, error) {
	if err := checkSize(int64(len(t.elements)) + int64(len(values))); err != nil {
		return nil, err
	}

	out := make([]jsvalue.Value, 0, len(t.elements)+len(values))
	out = append(out, t.elements...)

	for _, v := range values {
		if err := CheckElement(v); err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return newTuple(out), nil
}

// Shifted returns t without its first element. An empty t is returned as is.
func (t *Tuple) Shifted() *Tuple {
	if len(t.elements) == 0 {
		return t
	}

	return newTuple(slices.Clone(t.elements[1:]))
}

// Unshifted returns t with values prepended, in the order given.
func (t *Tuple) Unshifted(values ...jsvalue.Value) (*Tuple, error) {
	if err := checkSize(int64(len(t.elements)) + int64(len(values))); err != nil {
		return nil, err
	}

	out := make([]jsvalue.Value, 0, len(t.elements)+len(values))

	for _, v := range values {
		if err := CheckElement(v); err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return newTuple(append(out, t.elements...)), nil
}

// Reversed returns t in reverse order.
func (t *Tuple) Reversed() *Tuple {
	out := slices.Clone(t.elements)
	slices.Reverse(out)

	return newTuple(out)
}

// Slice returns the elements in [start, end). Both bounds count from the end when
// negative; an undefined end means the length.
func (t *Tuple) Slice(start, end jsvalue.Value) (*Tuple, error) {
	size := int64(len(t.elements))

	from, err := relativeIndex(start, size)
	if err != nil {
		return nil, err
	}

	to := size
	if !jsvalue.IsUndefined(end) {
		if to, err = relativeIndex(end, size); err != nil {
			return nil, err
		}
	}

	if from >= to {
		return Empty(), nil
	}

	return newTuple(slices.Clone(t.elements[from:to])), nil
}

// Spliced removes and inserts elements the way Array.prototype.splice does, taking
// (start, deleteCount, ...items). With no arguments nothing changes; with only a start
// everything from start on is removed.
func (t *Tuple) Spliced(args ...jsvalue.Value) (*Tuple, error) {
	size := int64(len(t.elements))

	var (
		start       int64
		deleteCount int64
		items       []jsvalue.Value
		err         error
	)

	if len(args) > 0 {
		if start, err = relativeIndex(args[0], size); err != nil {
			return nil, err
		}
	}

	switch len(args) {
	case 0:
	case 1:
		deleteCount = size - start
	default:
		items = args[2:]

		dc, err := jsvalue.ToInteger(args[1])
		if err != nil {
			return nil, err
		}

		deleteCount = min(max(dc, 0), size-start)
	}

	if err := checkSize(size + int64(len(items)) - deleteCount); err != nil {
		return nil, err
	}

	out := make([]jsvalue.Value, 0, size+int64(len(items))-deleteCount)
	out = append(out, t.elements[:start]...)

	for _, v := range items {
		if err := CheckElement(v); err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return newTuple(append(out, t.elements[start+deleteCount:]...)), nil
}

// With returns t with the element at index replaced by value.
func (t *Tuple) With(index, value jsvalue.Value) (*Tuple, error) {
	i, err := jsvalue.ToIndex(index)
	if err != nil {
		return nil, err
	}

	if i >= int64(len(t.elements)) {
		return nil, errors.ErrIndexOutOfRange
	}

	if err := CheckElement(value); err != nil {
		return nil, err
	}

	out := slices.Clone(t.elements)
	out[i] = value

	return newTuple(out), nil
}
