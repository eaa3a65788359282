package nodecount

import (
	"fmt"

	"github.com/katalvlaran/entnet/edgelist"
)

// Count returns the number of distinct node labels appearing across the
// source and destination slices combined. The two slices are edge endpoints
// and must correspond row-wise; empty input is valid and counts zero labels.
//
// Error Conditions:
//   - edgelist.ErrLengthMismatch : len(a) != len(b).
//   - ErrTotalMismatch           : count differs from WithExpectedTotal's n.
//
// Complexity: O(E) time, O(V) memory.
func Count(a, b []string, opts ...Option) (int, error) {
	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}

	ix, err := edgelist.NewIndex(a, b)
	if err != nil {
		return 0, err
	}

	count := ix.Len()
	if opt.CheckTotal && count != opt.ExpectedTotal {
		return 0, fmt.Errorf("%w: expected %d, computed %d",
			ErrTotalMismatch, opt.ExpectedTotal, count)
	}

	return count, nil
}

// Covers reports whether the edges reference all n nodes of a declared
// universe, i.e. whether the distinct-label count equals n. A count below n
// means some node is never touched by an edge; above n the declared universe
// itself was wrong — both report false.
//
// Error Conditions:
//   - ErrNegativeTotal           : n < 0.
//   - edgelist.ErrLengthMismatch : len(a) != len(b).
//
// Complexity: O(E) time, O(V) memory.
func Covers(a, b []string, n int) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("%w: n=%d", ErrNegativeTotal, n)
	}

	ix, err := edgelist.NewIndex(a, b)
	if err != nil {
		return false, err
	}

	return ix.Len() == n, nil
}
