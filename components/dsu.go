package components

// disjointSet is a union-find structure over dense node ids [0, n) with
// union by size and iterative path compression, giving near-constant
// amortized find/union (inverse-Ackermann factor).
type disjointSet struct {
	parent []int // parent[v] == v marks a root
	size   []int // size[r] is the member count of root r's set
}

// newDisjointSet builds n singleton sets.
// Complexity: O(n) time and memory.
func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		ds.parent[v] = v
		ds.size[v] = 1
	}

	return ds
}

// find returns the root of v's set. Iterative with path compression: each
// visited node is pointed at its grandparent, halving the path.
func (ds *disjointSet) find(v int) int {
	for ds.parent[v] != v {
		ds.parent[v] = ds.parent[ds.parent[v]]
		v = ds.parent[v]
	}

	return v
}

// union merges the sets containing u and v, attaching the smaller set under
// the larger root. Returns true if the sets were distinct.
func (ds *disjointSet) union(u, v int) bool {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		// Already connected; self-loops and duplicate edges land here.
		return false
	}
	if ds.size[rootU] < ds.size[rootV] {
		rootU, rootV = rootV, rootU
	}
	ds.parent[rootV] = rootU
	ds.size[rootU] += ds.size[rootV]

	return true
}
