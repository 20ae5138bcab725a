// Package tuple implements the immutable, structurally compared primitive sequence.
//
// A *Tuple is itself a primitive host value: it may be nested inside other Tuples, it is
// never an Object, and every operation returns a new Tuple instead of changing the
// receiver. The zero-length Tuple is a shared singleton, see Empty.
package tuple

import (
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"hash"
	"iter"
	"math"
	"strings"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/amp-labs/amp-tuple/lazy"
)

// MaxSafeInteger is the largest length a Tuple can have.
const MaxSafeInteger = jsvalue.MaxSafeInteger

// ErrUnhashable is returned by UpdateHash for elements of a host type it does not know.
var ErrUnhashable = stderrors.New("element cannot be hashed")

var empty = lazy.New(func() *Tuple { //nolint:gochecknoglobals
	return &Tuple{elements: []jsvalue.Value{}}
})

// Tuple is an immutable ordered sequence of primitive values.
type Tuple struct {
	elements []jsvalue.Value
}

// Empty returns the canonical zero-length Tuple.
func Empty() *Tuple {
	return empty.Get()
}

// New returns a Tuple holding values, in order. Every value must be a primitive.
func New(values ...jsvalue.Value) (*Tuple, error) {
	if err := checkSize(int64(len(values))); err != nil {
		return nil, err
	}

	for _, v := range values {
		if err := CheckElement(v); err != nil {
			return nil, err
		}
	}

	return newTuple(append([]jsvalue.Value(nil), values...)), nil
}

// newTuple takes ownership of elements, which must already be guard-checked.
func newTuple(elements []jsvalue.Value) *Tuple {
	if len(elements) == 0 {
		return Empty()
	}

	return &Tuple{elements: elements}
}

// CheckElement fails with ErrInvalidElement unless v may be stored in a Tuple.
func CheckElement(v jsvalue.Value) error {
	if !jsvalue.IsPrimitive(v) {
		return errors.ErrInvalidElement
	}

	return nil
}

func checkSize(n int64) error {
	if n > MaxSafeInteger {
		return errors.ErrLengthTooBig
	}

	return nil
}

// relativeIndex converts v to an integer and clamps it into [0, size], counting
// negative values from the end.
func relativeIndex(v jsvalue.Value, size int64) (int64, error) {
	i, err := jsvalue.ToInteger(v)
	if err != nil {
		return 0, err
	}

	if i < 0 {
		return max(size+i, 0), nil
	}

	return min(i, size), nil
}

func (*Tuple) TypeOf() string { return "tuple" }

// Valid reports whether t is a real Tuple rather than a nil pointer.
func (t *Tuple) Valid() bool {
	return t != nil
}

// Len returns the number of elements.
func (t *Tuple) Len() int {
	return len(t.elements)
}

// At returns the element at index i, or Undefined when i is out of range.
func (t *Tuple) At(i int) jsvalue.Value {
	if i < 0 || i >= len(t.elements) {
		return jsvalue.Undefined
	}

	return t.elements[i]
}

// Elements returns a copy of the elements.
func (t *Tuple) Elements() []jsvalue.Value {
	return append([]jsvalue.Value(nil), t.elements...)
}

// All iterates over the index and value of every element.
func (t *Tuple) All() iter.Seq2[int, jsvalue.Value] {
	return func(yield func(int, jsvalue.Value) bool) {
		for i, v := range t.elements {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equals reports whether t and other have the same length and pairwise
// SameValueZero elements.
func (t *Tuple) Equals(other *Tuple) bool {
	if t == other {
		return true
	}

	if t == nil || other == nil || len(t.elements) != len(other.elements) {
		return false
	}

	for i, v := range t.elements {
		if !jsvalue.SameValueZero(v, other.elements[i]) {
			return false
		}
	}

	return true
}

func (t *Tuple) EqualsValue(other jsvalue.Value) bool {
	o, ok := other.(*Tuple)

	return ok && t.Equals(o)
}

const (
	tagUndefined byte = iota + 1
	tagNull
	tagBool
	tagNumber
	tagString
	tagBigInt
	tagSymbol
	tagTuple
)

// canonicalNaN is the bit pattern every NaN hashes as.
const canonicalNaN uint64 = 0x7ff8000000000001

// UpdateHash writes a canonical encoding of t. Tuples that are Equal write the same bytes.
func (t *Tuple) UpdateHash(h hash.Hash) error {
	buf := binary.AppendUvarint([]byte{tagTuple}, uint64(len(t.elements)))
	if _, err := h.Write(buf); err != nil {
		return err
	}

	for _, v := range t.elements {
		if err := hashElement(h, v); err != nil {
			return err
		}
	}

	return nil
}

func hashElement(h hash.Hash, v jsvalue.Value) error {
	var buf []byte

	switch x := v.(type) {
	case jsvalue.UndefinedType:
		buf = []byte{tagUndefined}
	case jsvalue.NullType:
		buf = []byte{tagNull}
	case jsvalue.Bool:
		buf = []byte{tagBool, 0}
		if x {
			buf[1] = 1
		}
	case jsvalue.Number:
		bits := math.Float64bits(float64(x))

		switch {
		case math.IsNaN(float64(x)):
			bits = canonicalNaN
		case x == 0:
			bits = 0
		}

		buf = binary.BigEndian.AppendUint64([]byte{tagNumber}, bits)
	case jsvalue.String:
		buf = binary.AppendUvarint([]byte{tagString}, uint64(len(x)))
		buf = append(buf, string(x)...)
	case jsvalue.BigInt:
		i := x.Int()
		buf = []byte{tagBigInt, byte(i.Sign() + 1)}
		buf = binary.AppendUvarint(buf, uint64(len(i.Bytes())))
		buf = append(buf, i.Bytes()...)
	case *jsvalue.Symbol:
		id := x.ID()
		buf = append([]byte{tagSymbol}, id[:]...)
	case *Tuple:
		return x.UpdateHash(h)
	default:
		return fmt.Errorf("%w: %s", ErrUnhashable, v.TypeOf())
	}

	_, err := h.Write(buf)

	return err
}

// String renders t in literal form, e.g. #[1, "2", 3n].
func (t *Tuple) String() string {
	if t == nil {
		return "<nil tuple>"
	}

	parts := make([]string, len(t.elements))
	for i, v := range t.elements {
		parts[i] = jsvalue.Inspect(v)
	}

	return "#[" + strings.Join(parts, ", ") + "]"
}
