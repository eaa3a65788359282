// Package edgelist normalizes parallel label/weight slices into a dense
// integer-id graph representation.
//
// What:
//
//   - Index maps opaque string labels to dense int ids, a bijection in
//     first-appearance order across the concatenated source and destination
//     sequences, contiguous from 0.
//   - Build converts three equal-length slices — source labels, destination
//     labels, weights — into an *Index plus an []Edge of (From, To, Weight)
//     triplets, one edge per input row, in input order.
//   - NewIndex runs the label-normalization step alone, for callers that
//     need the distinct-label universe without materializing edges.
//
// Why:
//
//   - Downstream algorithms (union-find, counting) want dense ids, not
//     string comparisons.
//   - The label→id assignment is the single source of ordering truth: result
//     tables and canonical component ids are both derived from it.
//
// Semantics:
//
//   - Label comparison is exact string equality; no case or whitespace
//     normalization is applied.
//   - Self-loops (source equals destination) are valid edges.
//   - Duplicate edges are all retained; nothing merges.
//   - Empty input (length 0) is valid and yields an empty Index and a nil
//     edge slice, not an error.
//   - Weights may be any float64 by default; WithFiniteWeights rejects
//     NaN and ±Inf.
//
// Complexity:
//
//   - Build:    O(E) time, O(V + E) memory   (V = distinct labels, E = rows).
//   - NewIndex: O(E) time, O(V) memory.
//
// Errors:
//
//   - ErrLengthMismatch: the input slices differ in length.
//   - ErrNonFiniteWeight: a weight is NaN or ±Inf (only with WithFiniteWeights).
package edgelist
