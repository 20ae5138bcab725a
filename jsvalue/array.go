package jsvalue

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-tuple/optional"
)

// IndexCursor enumerates the present indexes of a possibly sparse array-like in
// ascending order. All bounds are exclusive of length.
type IndexCursor interface {
	// FirstIndex returns the smallest present index below length.
	FirstIndex(length int64) (optional.Value[int64], error)

	// NextIndex returns the smallest present index above after and below length.
	NextIndex(after, length int64) (optional.Value[int64], error)

	// LastIndex returns an upper bound for the present indexes below length. Cursors that
	// cannot know better report length-1.
	LastIndex(length int64) (optional.Value[int64], error)
}

// ScanCursor is the generic cursor: it probes every index with HasIndex.
type ScanCursor struct {
	Object Object
}

func (c ScanCursor) FirstIndex(length int64) (optional.Value[int64], error) {
	return c.NextIndex(-1, length)
}

func (c ScanCursor) NextIndex(after, length int64) (optional.Value[int64], error) {
	for i := after + 1; i < length; i++ {
		ok, err := c.Object.HasIndex(i)
		if err != nil {
			return optional.None[int64](), err
		}

		if ok {
			return optional.Some(i), nil
		}
	}

	return optional.None[int64](), nil
}

func (c ScanCursor) LastIndex(length int64) (optional.Value[int64], error) {
	if length <= 0 {
		return optional.None[int64](), nil
	}

	return optional.Some(length - 1), nil
}

// CursorFor returns the cheapest cursor available for obj.
func CursorFor(obj Object) IndexCursor {
	if c, ok := obj.(IndexCursor); ok {
		return c
	}

	return ScanCursor{Object: obj}
}

// Array is a host array. Dense arrays keep their elements in a slice where nil marks a
// hole; sparse arrays keep only the present elements, keyed by index.
type Array struct {
	dense  []Value
	sparse map[int64]Value
	keys   []int64
	length int64
}

// NewArray returns a dense array holding values. Nil values are holes.
func NewArray(values ...Value) *Array {
	return &Array{dense: slices.Clone(values), length: int64(len(values))}
}

// NewSparseArray returns an array of the given length with only the listed indexes present.
// Indexes outside [0, length) are ignored.
func NewSparseArray(length int64, present map[int64]Value) *Array {
	arr := &Array{sparse: make(map[int64]Value, len(present)), length: length}

	for k, v := range present {
		if k < 0 || k >= length || v == nil {
			continue
		}

		arr.sparse[k] = v
		arr.keys = append(arr.keys, k)
	}

	slices.Sort(arr.keys)

	return arr
}

func (*Array) TypeOf() string { return "object" }

// Len returns the array's length.
func (a *Array) Len() int64 {
	return a.length
}

func (a *Array) HasIndex(index int64) (bool, error) {
	if index < 0 || index >= a.length {
		return false, nil
	}

	if a.sparse != nil {
		_, ok := a.sparse[index]

		return ok, nil
	}

	return a.dense[index] != nil, nil
}

func (a *Array) GetIndex(index int64) (Value, error) {
	if index < 0 || index >= a.length {
		return Undefined, nil
	}

	var v Value
	if a.sparse != nil {
		v = a.sparse[index]
	} else {
		v = a.dense[index]
	}

	if v == nil {
		return Undefined, nil
	}

	return v, nil
}

func (a *Array) Length() (Value, error) {
	return Number(a.length), nil
}

func (a *Array) FirstIndex(length int64) (optional.Value[int64], error) {
	return a.NextIndex(-1, length)
}

func (a *Array) NextIndex(after, length int64) (optional.Value[int64], error) {
	length = min(length, a.length)

	if a.sparse != nil {
		pos := sort.Search(len(a.keys), func(i int) bool { return a.keys[i] > after })
		if pos < len(a.keys) && a.keys[pos] < length {
			return optional.Some(a.keys[pos]), nil
		}

		return optional.None[int64](), nil
	}

	for i := max(after+1, 0); i < length; i++ {
		if a.dense[i] != nil {
			return optional.Some(i), nil
		}
	}

	return optional.None[int64](), nil
}

func (a *Array) LastIndex(length int64) (optional.Value[int64], error) {
	length = min(length, a.length)

	if a.sparse != nil {
		pos := sort.Search(len(a.keys), func(i int) bool { return a.keys[i] >= length })
		if pos > 0 {
			return optional.Some(a.keys[pos-1]), nil
		}

		return optional.None[int64](), nil
	}

	for i := length - 1; i >= 0; i-- {
		if a.dense[i] != nil {
			return optional.Some(i), nil
		}
	}

	return optional.None[int64](), nil
}

// ToPrimitive joins the elements with commas, as the host's Array.prototype.toString does.
func (a *Array) ToPrimitive() (Value, error) {
	parts := make([]string, 0, min(a.length, 1024)) //nolint:mnd

	for i := range a.length {
		v, err := a.GetIndex(i)
		if err != nil {
			return nil, err
		}

		if IsNullish(v) {
			parts = append(parts, "")

			continue
		}

		s, err := ToString(v)
		if err != nil {
			return nil, err
		}

		parts = append(parts, s)
	}

	return String(strings.Join(parts, ",")), nil
}

func (a *Array) String() string {
	if a.sparse != nil {
		parts := make([]string, 0, len(a.keys))
		for _, k := range a.keys {
			parts = append(parts, strconv.FormatInt(k, 10)+": "+Inspect(a.sparse[k]))
		}

		return "[" + strings.Join(parts, ", ") + "] (length " + strconv.FormatInt(a.length, 10) + ")"
	}

	parts := make([]string, 0, a.length)

	for i := range a.length {
		v, _ := a.GetIndex(i)
		parts = append(parts, Inspect(v))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
