package sortable

import (
	"errors"
	"slices"

	"github.com/amp-labs/amp-tuple/compare"
)

// ErrInconsistentComparator is returned when the comparator did not describe a
// consistent order over the sorted items.
var ErrInconsistentComparator = errors.New("comparison method violates its general contract")

// abort carries a comparator error out of slices.SortStableFunc.
type abort struct {
	err error
}

// StableFunc sorts items in place, keeping equal items in their original relative order.
// A comparator error stops the sort and is returned as is. If the sort completes but the
// comparator disagrees with the resulting order, ErrInconsistentComparator is returned and
// items holds a permutation of the input.
//
// Once the sort completes, cmp is called once more for each adjacent pair of the result,
// so a sort of n items makes up to n-1 comparator calls beyond those of the sort itself.
func StableFunc[T any](items []T, cmp compare.Comparator[T]) (err error) {
	if len(items) < 2 {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}

			err = a.err
		}
	}()

	slices.SortStableFunc(items, func(a, b T) int {
		res, cmpErr := cmp(a, b)
		if cmpErr != nil {
			panic(abort{err: cmpErr})
		}

		return res
	})

	for i := 1; i < len(items); i++ {
		res, cmpErr := cmp(items[i-1], items[i])
		if cmpErr != nil {
			return cmpErr
		}

		if res > 0 {
			return ErrInconsistentComparator
		}
	}

	return nil
}
