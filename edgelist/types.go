package edgelist

import "errors"

// Sentinel errors for edge-list construction.
var (
	// ErrLengthMismatch indicates the parallel input slices differ in length.
	// Wrapped instances report each slice's actual length.
	ErrLengthMismatch = errors.New("edgelist: input sequences must have equal lengths")

	// ErrNonFiniteWeight indicates a NaN or ±Inf weight was encountered while
	// WithFiniteWeights was in effect. Wrapped instances report the offending
	// row index and value.
	ErrNonFiniteWeight = errors.New("edgelist: non-finite edge weight")
)

// Edge is one row of the normalized edge list: endpoint ids assigned by an
// Index, plus the caller-supplied weight. Edges are undirected for
// connectivity purposes; From/To preserve the input's (source, destination)
// roles for callers that care.
type Edge struct {
	From   int     // dense id of the source label
	To     int     // dense id of the destination label
	Weight float64 // caller-supplied weight, carried through untouched
}

// Options contains tunable parameters for Build.
//
// FiniteWeights – reject NaN and ±Inf weights with ErrNonFiniteWeight.
// Default is false: any float64 passes through, since connectivity ignores
// weight values entirely.
type Options struct {
	FiniteWeights bool
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithFiniteWeights makes Build reject NaN and ±Inf weights.
func WithFiniteWeights() Option {
	return func(o *Options) {
		o.FiniteWeights = true
	}
}

// DefaultOptions returns the Options Build starts from before applying
// functional overrides: FiniteWeights=false (all float64 values accepted).
func DefaultOptions() Options {
	return Options{FiniteWeights: false}
}
