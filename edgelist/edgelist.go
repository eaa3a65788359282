package edgelist

import (
	"fmt"
	"math"
)

// Index is an insertion-ordered bijection between string node labels and
// dense int ids. Ids are contiguous from 0 and stable for the lifetime of
// the Index; the zero value is not usable — construct via NewIndex or Build.
type Index struct {
	ids    map[string]int // label → dense id
	labels []string       // dense id → label, first-appearance order
}

// newIndex allocates an empty Index with capacity hints for n labels.
func newIndex(n int) *Index {
	return &Index{
		ids:    make(map[string]int, n),
		labels: make([]string, 0, n),
	}
}

// Add returns the dense id for label, assigning the next free id on first
// sight. Complexity: O(1) amortized.
func (ix *Index) Add(label string) int {
	if id, ok := ix.ids[label]; ok {
		return id
	}
	id := len(ix.labels)
	ix.ids[label] = id
	ix.labels = append(ix.labels, label)

	return id
}

// ID returns the dense id previously assigned to label, and whether the
// label is known. Complexity: O(1).
func (ix *Index) ID(label string) (int, bool) {
	id, ok := ix.ids[label]

	return id, ok
}

// Label returns the label assigned to id, and whether id is in range.
// Complexity: O(1).
func (ix *Index) Label(id int) (string, bool) {
	if id < 0 || id >= len(ix.labels) {
		return "", false
	}

	return ix.labels[id], true
}

// Len reports the number of distinct labels indexed. Complexity: O(1).
func (ix *Index) Len() int {
	return len(ix.labels)
}

// Labels returns a copy of all indexed labels in first-appearance order,
// so that Labels()[id] is the label of dense id `id`.
// Complexity: O(V) time and memory.
func (ix *Index) Labels() []string {
	out := make([]string, len(ix.labels))
	copy(out, ix.labels)

	return out
}

// NewIndex runs the label-normalization step alone: every distinct label in
// the concatenation of a then b receives a dense id in first-appearance
// order. Returns ErrLengthMismatch when len(a) != len(b), since a and b are
// edge endpoints and must correspond row-wise.
//
// Complexity: O(E) time, O(V) memory.
func NewIndex(a, b []string) (*Index, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}

	ix := newIndex(len(a) * 2)
	for _, label := range a {
		ix.Add(label)
	}
	for _, label := range b {
		ix.Add(label)
	}

	return ix, nil
}

// Build converts three equal-length parallel slices — source labels,
// destination labels, weights — into a label Index and a normalized edge
// list of (From, To, Weight) triplets in input order.
//
// Error Conditions:
//   - ErrLengthMismatch  : len(a), len(b) and len(w) are not all equal.
//   - ErrNonFiniteWeight : some w[i] is NaN or ±Inf (only with WithFiniteWeights).
//
// Steps:
//  1. Validate lengths; report every actual length on mismatch.
//  2. Assign dense ids over the concatenation of a then b (see NewIndex).
//  3. Emit one Edge per row, preserving input order, self-loops and
//     duplicates included; optionally reject non-finite weights.
//
// Empty input is valid: Build returns an empty Index, a nil edge slice and
// a nil error.
//
// Complexity: O(E) time, O(V + E) memory.
func Build(a, b []string, w []float64, opts ...Option) (*Index, []Edge, error) {
	// 1. All three slices must correspond row-wise.
	if len(a) != len(b) || len(a) != len(w) {
		return nil, nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d, len(w)=%d",
			ErrLengthMismatch, len(a), len(b), len(w))
	}

	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}

	// 2. Label normalization over concat(a, b) fixes the id order that every
	//    downstream result (tables, canonical component ids) derives from.
	ix, err := NewIndex(a, b)
	if err != nil {
		return nil, nil, err
	}

	if len(a) == 0 {
		return ix, nil, nil
	}

	// 3. Materialize edges in input order. Lookups cannot miss: every label
	//    was indexed in step 2.
	edges := make([]Edge, 0, len(a))
	for i := range a {
		if opt.FiniteWeights && (math.IsNaN(w[i]) || math.IsInf(w[i], 0)) {
			return nil, nil, fmt.Errorf("%w: w[%d]=%v", ErrNonFiniteWeight, i, w[i])
		}
		from, _ := ix.ID(a[i])
		to, _ := ix.ID(b[i])
		edges = append(edges, Edge{From: from, To: to, Weight: w[i]})
	}

	return ix, edges, nil
}
