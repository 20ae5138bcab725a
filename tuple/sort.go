package tuple

import (
	stderrors "errors"
	"fmt"
	"slices"

	"github.com/amp-labs/amp-tuple/compare"
	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/jsvalue"
	"github.com/amp-labs/amp-tuple/logger"
	"github.com/amp-labs/amp-tuple/sortable"
)

// Sorted returns the elements in sorted order. comparefn must be undefined or callable.
// Without comparefn elements are ordered by their string forms, compared by UTF-16 code
// units. Undefined elements always sort last and comparefn never sees them.
//
// If comparefn does not describe a consistent order the result holds the same elements
// in an unspecified order; this is not an error. To notice such a comparefn, Sorted calls
// it once more for each adjacent pair of the sorted result, so a tuple of n defined
// elements sees up to n-1 calls beyond those made while sorting.
func (t *Tuple) Sorted(comparefn jsvalue.Value) (*Tuple, error) {
	var cmp compare.Comparator[jsvalue.Value]

	switch {
	case jsvalue.IsUndefined(comparefn):
		cmp = defaultCompare
	case jsvalue.IsCallable(comparefn):
		cmp = userCompare(comparefn)
	default:
		return nil, fmt.Errorf("%w: the comparison function must be either a function or undefined",
			errors.ErrCallableExpected)
	}

	if len(t.elements) < 2 { //nolint:mnd
		return t, nil
	}

	out := slices.Clone(t.elements)

	if err := sortable.StableFunc(out, cmp); err != nil {
		if !stderrors.Is(err, sortable.ErrInconsistentComparator) {
			return nil, err
		}

		sortInconsistent.Inc()
		logger.Get().Debug("inconsistent comparator, keeping best-effort order", "length", len(out))
	}

	return newTuple(out), nil
}

// undefinedLast orders undefined after everything else. It reports ok=false when
// neither operand is undefined.
func undefinedLast(a, b jsvalue.Value) (res int, ok bool) {
	aUndef, bUndef := jsvalue.IsUndefined(a), jsvalue.IsUndefined(b)

	switch {
	case aUndef && bUndef:
		return 0, true
	case aUndef:
		return 1, true
	case bUndef:
		return -1, true
	default:
		return 0, false
	}
}

func defaultCompare(a, b jsvalue.Value) (int, error) {
	if res, ok := undefinedLast(a, b); ok {
		return res, nil
	}

	as, err := jsvalue.ToString(a)
	if err != nil {
		return 0, err
	}

	bs, err := jsvalue.ToString(b)
	if err != nil {
		return 0, err
	}

	return jsvalue.CompareStrings(as, bs), nil
}

func userCompare(fn jsvalue.Value) compare.Comparator[jsvalue.Value] {
	return func(a, b jsvalue.Value) (int, error) {
		if res, ok := undefinedLast(a, b); ok {
			return res, nil
		}

		res, err := jsvalue.Call(fn, jsvalue.Undefined, a, b)
		if err != nil {
			return 0, err
		}

		n, err := jsvalue.ToNumber(res)
		if err != nil {
			return 0, err
		}

		return compare.Sign(n), nil
	}
}
