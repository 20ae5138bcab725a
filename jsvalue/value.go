// Package jsvalue is the host value model consumed by the tuple engine: the primitive
// kinds, property-bearing objects, callables, and the conversions and probes the
// engine relies on (integer and index conversion, boolean coercion, string rendering,
// has-property/get/length, sparse index cursors and array iterators).
//
// Values are ordinary Go values implementing Value. Go nil is never a value; use
// Undefined instead.
package jsvalue

import (
	"math/big"
	"strconv"

	"github.com/google/uuid"
)

// Value is any host value. TypeOf returns the name the host's typeof operator reports.
type Value interface {
	TypeOf() string
}

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

func (UndefinedType) TypeOf() string { return "undefined" }

// NullType is the type of Null.
type NullType struct{}

func (NullType) TypeOf() string { return "object" }

var (
	Undefined Value = UndefinedType{} //nolint:gochecknoglobals
	Null      Value = NullType{}      //nolint:gochecknoglobals
)

// Bool is a host boolean.
type Bool bool

func (Bool) TypeOf() string { return "boolean" }

// Number is a host IEEE-754 double.
type Number float64

func (Number) TypeOf() string { return "number" }

// String is a host string. Ordering follows UTF-16 code units, see CompareStrings.
type String string

func (String) TypeOf() string { return "string" }

// BigInt is an arbitrary-precision host integer. The wrapped *big.Int is never mutated.
type BigInt struct {
	v *big.Int
}

func (BigInt) TypeOf() string { return "bigint" }

// NewBigInt returns a BigInt holding i.
func NewBigInt(i int64) BigInt {
	return BigInt{v: big.NewInt(i)}
}

// ParseBigInt parses a base-10 integer literal.
func ParseBigInt(s string) (BigInt, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, false
	}

	return BigInt{v: v}, true
}

// Int returns a copy of the underlying integer.
func (b BigInt) Int() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(b.v)
}

func (b BigInt) String() string {
	if b.v == nil {
		return "0"
	}

	return b.v.String()
}

// Symbol is a unique host symbol. Identity is carried by a random UUID so that
// symbols can take part in content hashing.
type Symbol struct {
	id          uuid.UUID
	description string
}

func (*Symbol) TypeOf() string { return "symbol" }

// NewSymbol returns a fresh symbol, distinct from every other symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{id: uuid.New(), description: description}
}

// Valid reports whether s is a real symbol rather than a nil pointer.
func (s *Symbol) Valid() bool {
	return s != nil
}

// ID returns the identity of the symbol.
func (s *Symbol) ID() uuid.UUID {
	return s.id
}

// Description returns the description the symbol was created with.
func (s *Symbol) Description() string {
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// IsUndefined reports whether v is Undefined.
func IsUndefined(v Value) bool {
	_, ok := v.(UndefinedType)

	return ok
}

// IsNullish reports whether v is Undefined or Null.
func IsNullish(v Value) bool {
	switch v.(type) {
	case UndefinedType, NullType:
		return true
	default:
		return false
	}
}

// IsObject reports whether v is a property-bearing object (including functions).
func IsObject(v Value) bool {
	_, ok := v.(Object)

	return ok
}

// Validator is implemented by pointer-backed primitives, whose nil pointer
// satisfies Value but is not a value.
type Validator interface {
	Valid() bool
}

// IsPrimitive reports whether v may be stored in a Tuple: any value that is not
// an object. Nil, including a typed nil primitive pointer, is not a value.
func IsPrimitive(v Value) bool {
	if v == nil || IsObject(v) {
		return false
	}

	if c, ok := v.(Validator); ok {
		return c.Valid()
	}

	return true
}

// Inspect renders v in literal form for diagnostics, e.g. "2", `"2"`, "3n", "Symbol(x)".
func Inspect(v Value) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case UndefinedType:
		return "undefined"
	case NullType:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(x))
	case Number:
		return NumberToString(float64(x))
	case String:
		return strconv.Quote(string(x))
	case BigInt:
		return x.String() + "n"
	case *Symbol:
		return x.String()
	case interface{ String() string }:
		return x.String()
	default:
		return "[" + v.TypeOf() + "]"
	}
}
