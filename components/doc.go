// Package components partitions a weighted undirected edge list into
// connected components with deterministic, canonical component ids.
//
// What:
//
//   - Find assigns every node id in [0, n) a component id such that two
//     nodes share an id iff some edge path connects them; nodes no edge
//     references become singleton components.
//   - FindLabels wraps edgelist.Build + Find into the label-level contract:
//     parallel (source, destination, weight) slices in, a (node, component)
//     table in first-appearance order out.
//   - Result carries the per-node assignment plus per-component Stat
//     summaries (size, edge count, total/mean weight).
//
// Why:
//
//   - Network analysis: split a similarity or interaction network into its
//     independent clusters before any per-cluster computation.
//   - Sanity checks: a component count of 1 certifies the edge list is
//     connected.
//
// Determinism:
//
//	Union-find roots are arbitrary, so raw roots never leak out. After all
//	unions, component ids are renumbered in increasing order of each set's
//	smallest member id; with label input, member ids themselves follow
//	first-appearance order. Identical input therefore always produces an
//	identical table, row for row.
//
// Complexity:
//
//   - Find:       O((V+E) α(V)) time, O(V) extra memory.
//   - FindLabels: O((V+E) α(V)) time, O(V+E) memory.
//
// Options:
//
//   - WithOneBased: component ids start at 1 (for 1-indexed host environments).
//   - WithFiniteWeights: reject NaN/±Inf weights during edge-list building.
//
// Errors:
//
//   - ErrNegativeCount: Find received n < 0.
//   - ErrNodeRange: an edge endpoint lies outside [0, n).
//   - edgelist.ErrLengthMismatch, edgelist.ErrNonFiniteWeight: propagated
//     unchanged by FindLabels.
package components
