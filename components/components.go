package components

import (
	"fmt"

	"github.com/katalvlaran/entnet/edgelist"
)

// Find partitions node ids [0, n) into connected components, treating every
// edge as undirected regardless of weight sign. Nodes never referenced by an
// edge become singleton components.
//
// Component ids are canonical: after all unions, ids are assigned in
// increasing order of each set's smallest member id, so identical input
// always yields identical output. Ids start at 0, or at 1 under WithOneBased.
//
// Error Conditions:
//   - ErrNegativeCount : n < 0.
//   - ErrNodeRange     : some edge endpoint lies outside [0, n).
//
// Steps:
//  1. Validate n and every edge endpoint.
//  2. Union endpoints over a disjoint-set in input order; self-loops and
//     duplicates are harmless no-op unions.
//  3. Renumber roots canonically by scanning ids in increasing order.
//  4. Aggregate per-component stats: member count, edge count, total and
//     mean weight.
//
// Complexity: O((V+E) α(V)) time, O(V) extra memory.
func Find(n int, edges []edgelist.Edge, opts ...Option) (*Result, error) {
	// 1. A node universe must be declared, even if empty.
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
	}

	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}

	// 2. Union endpoints in input order. Endpoints are validated as we go so
	//    the error can name the offending edge.
	ds := newDisjointSet(n)
	for i, e := range edges {
		if e.From < 0 || e.From >= n {
			return nil, fmt.Errorf("%w: edges[%d].From=%d, node count %d", ErrNodeRange, i, e.From, n)
		}
		if e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edges[%d].To=%d, node count %d", ErrNodeRange, i, e.To, n)
		}
		ds.union(e.From, e.To)
	}

	base := 0
	if opt.OneBased {
		base = 1
	}

	// 3. Canonical renumbering: scanning ids in increasing order guarantees
	//    each set is first seen at its smallest member, so component ids are
	//    ordered by smallest member id — deterministic across runs.
	assign := make([]int, n)
	rootComp := make(map[int]int, n)
	for v := 0; v < n; v++ {
		root := ds.find(v)
		comp, ok := rootComp[root]
		if !ok {
			comp = len(rootComp)
			rootComp[root] = comp
		}
		assign[v] = comp + base
	}

	// 4. Aggregate stats. Every edge is intra-component by construction.
	stats := make([]Stat, len(rootComp))
	for v := 0; v < n; v++ {
		stats[assign[v]-base].Size++
	}
	for _, e := range edges {
		s := &stats[assign[e.From]-base]
		s.Edges++
		s.TotalWeight += e.Weight
	}
	for i := range stats {
		if stats[i].Edges > 0 {
			stats[i].MeanWeight = stats[i].TotalWeight / float64(stats[i].Edges)
		}
	}

	return &Result{Assign: assign, Count: len(rootComp), Stats: stats}, nil
}

// Members returns the node ids assigned to component c, in increasing order.
// Complexity: O(V).
func (r *Result) Members(c int) []int {
	var out []int
	for v, comp := range r.Assign {
		if comp == c {
			out = append(out, v)
		}
	}

	return out
}

// FindLabels is the label-level entry point: it normalizes the three
// parallel slices via edgelist.Build, partitions the resulting ids, and
// returns one (node label, component id) row per distinct label in
// first-appearance order — the shape a host environment marshals into its
// native table type.
//
// Error Conditions:
//   - edgelist.ErrLengthMismatch  : the slices differ in length.
//   - edgelist.ErrNonFiniteWeight : non-finite weight under WithFiniteWeights.
//
// Empty input yields an empty (zero-row) table.
//
// Complexity: O((V+E) α(V)) time, O(V+E) memory.
func FindLabels(a, b []string, w []float64, opts ...Option) (*Table, error) {
	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}

	var buildOpts []edgelist.Option
	if opt.FiniteWeights {
		buildOpts = append(buildOpts, edgelist.WithFiniteWeights())
	}

	ix, edges, err := edgelist.Build(a, b, w, buildOpts...)
	if err != nil {
		return nil, err
	}

	res, err := Find(ix.Len(), edges, opts...)
	if err != nil {
		// Unreachable for Build output (ids are dense in [0, Len)), kept for
		// symmetry with direct Find callers.
		return nil, err
	}

	return &Table{Nodes: ix.Labels(), Components: res.Assign}, nil
}
