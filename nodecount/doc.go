// Package nodecount counts the distinct node labels an edge list references.
//
// What:
//
//   - Count returns the number of distinct labels across the source and
//     destination slices combined, independent of component structure.
//   - WithExpectedTotal(n) additionally validates the computed count against
//     a caller-supplied total and fails with ErrTotalMismatch when they
//     disagree.
//   - Covers reports whether the edges reference all n nodes of a declared
//     universe — the truth-value reading of the same question.
//
// Why:
//
//   - Cheap pre-check before component finding: a caller holding an expected
//     node universe can reject inconsistent edge lists up front.
//   - Sizing: the distinct count is the V every downstream allocation needs.
//
// The expected-total parameter is a validation value, not a buffer size:
// Count always returns the computed distinct-label count, and n only gates
// whether that count is acceptable. Callers that merely want the count pass
// no option.
//
// Complexity:
//
//   - Count, Covers: O(E) time, O(V) memory.
//
// Errors:
//
//   - edgelist.ErrLengthMismatch: the two slices differ in length.
//   - ErrTotalMismatch: computed count differs from WithExpectedTotal's n.
//   - ErrNegativeTotal: Covers received n < 0.
package nodecount
