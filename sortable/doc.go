// Package sortable provides comparator-driven sorting for callers whose comparators
// may fail or may not describe a consistent total order.
//
// # Overview
//
// [StableFunc] sorts a slice in place with a [github.com/amp-labs/amp-tuple/compare.Comparator].
// Two kinds of trouble are reported separately:
//
//   - A comparator error (for example an exception thrown by a user-supplied callback)
//     aborts the sort immediately and is returned unchanged. The slice is left in an
//     unspecified order.
//   - A comparator that contradicts itself (a before b, yet b before a) cannot abort a
//     sort that has already produced an order. The sort completes and [ErrInconsistentComparator]
//     is returned so the caller can decide whether the best-effort order is acceptable.
//     The check compares every adjacent pair of the result again, so a comparator with
//     side effects observes up to n-1 calls after the sort itself finishes.
//
// # Usage
//
//	err := sortable.StableFunc(values, func(a, b int) (int, error) {
//	    return a - b, nil
//	})
//	if errors.Is(err, sortable.ErrInconsistentComparator) {
//	    // values holds a permutation of the input in an unspecified order
//	}
package sortable
