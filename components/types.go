package components

import "errors"

// Sentinel errors for component finding.
var (
	// ErrNegativeCount indicates a negative total node count was supplied.
	ErrNegativeCount = errors.New("components: node count must be non-negative")

	// ErrNodeRange indicates an edge endpoint id outside [0, n). Wrapped
	// instances report the edge index, the endpoint id and the node count.
	ErrNodeRange = errors.New("components: edge endpoint out of node range")
)

// Stat summarizes one component.
//
// Size is the number of member nodes. Edges counts edges whose endpoints
// both lie in the component, self-loops and duplicates included. TotalWeight
// sums those edges' weights; MeanWeight is TotalWeight/Edges, or 0 for a
// component with no edges (an isolated node).
type Stat struct {
	Size        int
	Edges       int
	TotalWeight float64
	MeanWeight  float64
}

// Result is the partition produced by Find.
//
// Assign holds one component id per node id: Assign[v] is the component of
// node v. Count is the number of components. Stats[i] describes the i-th
// component in canonical order — the component whose id is i plus the
// configured base (0 by default, 1 under WithOneBased).
type Result struct {
	Assign []int
	Count  int
	Stats  []Stat
}

// Table is the label-level output of FindLabels: one row per distinct node
// label, in first-appearance order. Nodes[i] belongs to component
// Components[i]. The two slices always have equal length.
type Table struct {
	Nodes      []string
	Components []int
}

// Len reports the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Nodes)
}

// Options contains tunable parameters for component finding.
//
// OneBased      – emit component ids starting at 1 instead of 0, for
// callers marshalling into 1-indexed host environments.
// FiniteWeights – forwarded to the edge-list builder by FindLabels:
// reject NaN and ±Inf weights.
type Options struct {
	OneBased      bool
	FiniteWeights bool
}

// Option represents a functional option for configuring Find and FindLabels.
type Option func(*Options)

// WithOneBased makes component ids start at 1 instead of 0.
func WithOneBased() Option {
	return func(o *Options) {
		o.OneBased = true
	}
}

// WithFiniteWeights makes FindLabels reject NaN and ±Inf weights while
// building the edge list. Find ignores it: weights never affect connectivity.
func WithFiniteWeights() Option {
	return func(o *Options) {
		o.FiniteWeights = true
	}
}

// DefaultOptions returns the Options Find starts from before applying
// functional overrides: OneBased=false, FiniteWeights=false.
func DefaultOptions() Options {
	return Options{OneBased: false, FiniteWeights: false}
}
