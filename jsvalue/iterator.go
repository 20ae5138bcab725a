package jsvalue

// IterationKind selects what an ArrayIterator yields.
type IterationKind int

const (
	IterateKeys IterationKind = iota
	IterateValues
	IterateEntries
)

func (k IterationKind) String() string {
	switch k {
	case IterateKeys:
		return "keys"
	case IterateValues:
		return "values"
	case IterateEntries:
		return "entries"
	default:
		return "unknown"
	}
}

// ArrayIterator walks the indexes of an array-like, re-reading its length on every step.
// Entries are yielded as two-element arrays of index and value.
type ArrayIterator struct {
	ordinary

	target Object
	kind   IterationKind
	next   int64
	done   bool
}

// NewArrayIterator returns an iterator over target.
func NewArrayIterator(target Object, kind IterationKind) *ArrayIterator {
	return &ArrayIterator{target: target, kind: kind}
}

func (*ArrayIterator) TypeOf() string { return "object" }

// Kind returns what the iterator yields.
func (it *ArrayIterator) Kind() IterationKind {
	return it.kind
}

// Next advances the iterator. Once done is reported, every later call reports done again.
func (it *ArrayIterator) Next() (value Value, done bool, err error) {
	if it.done {
		return Undefined, true, nil
	}

	length, err := LengthOfArrayLike(it.target)
	if err != nil {
		return nil, false, err
	}

	if it.next >= length {
		it.done = true

		return Undefined, true, nil
	}

	index := it.next
	it.next++

	if it.kind == IterateKeys {
		return Number(index), false, nil
	}

	v, err := it.target.GetIndex(index)
	if err != nil {
		return nil, false, err
	}

	if it.kind == IterateValues {
		return v, false, nil
	}

	return NewArray(Number(index), v), false, nil
}

// Collect drains the iterator.
func (it *ArrayIterator) Collect() ([]Value, error) {
	var out []Value

	for {
		v, done, err := it.Next()
		if err != nil {
			return nil, err
		}

		if done {
			return out, nil
		}

		out = append(out, v)
	}
}

func (it *ArrayIterator) String() string {
	return "[object Array Iterator]"
}
