package edgelist_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/entnet/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_AssignsIDsInFirstAppearanceOrder verifies that dense ids follow
// first appearance across the concatenation of the source sequence then the
// destination sequence, contiguous from 0.
func TestBuild_AssignsIDsInFirstAppearanceOrder(t *testing.T) {
	a := []string{"x", "y"}
	b := []string{"y", "z"}
	w := []float64{1.0, 1.0}

	ix, edges, err := edgelist.Build(a, b, w)
	require.NoError(t, err)

	// Concatenation order is x, y, y, z → ids x=0, y=1, z=2.
	assert.Equal(t, []string{"x", "y", "z"}, ix.Labels())
	assert.Equal(t, 3, ix.Len())

	// Edges preserve input order and carry weights through untouched.
	require.Len(t, edges, 2)
	assert.Equal(t, edgelist.Edge{From: 0, To: 1, Weight: 1.0}, edges[0])
	assert.Equal(t, edgelist.Edge{From: 1, To: 2, Weight: 1.0}, edges[1])
}

// TestBuild_EmptyInputIsValid verifies that zero-length input produces an
// empty index and edge list, not an error.
func TestBuild_EmptyInputIsValid(t *testing.T) {
	ix, edges, err := edgelist.Build(nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, ix.Len())
	assert.Empty(t, edges)
}

// TestBuild_LengthMismatch verifies that unequal slice lengths fail with
// ErrLengthMismatch and no partial result.
func TestBuild_LengthMismatch(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		w    []float64
	}{
		{"short b", []string{"a", "b"}, []string{"b"}, []float64{1.0, 1.0}},
		{"short w", []string{"a", "b"}, []string{"b", "c"}, []float64{1.0}},
		{"short a", []string{"a"}, []string{"b", "c"}, []float64{1.0, 1.0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ix, edges, err := edgelist.Build(tc.a, tc.b, tc.w)
			assert.ErrorIs(t, err, edgelist.ErrLengthMismatch)
			assert.Nil(t, ix)
			assert.Nil(t, edges)
		})
	}
}

// TestBuild_NoLabelNormalization verifies exact string equality: labels that
// differ only in case or surrounding whitespace stay distinct.
func TestBuild_NoLabelNormalization(t *testing.T) {
	a := []string{"node", "Node"}
	b := []string{" node", "node "}
	w := []float64{1.0, 2.0}

	ix, _, err := edgelist.Build(a, b, w)
	require.NoError(t, err)
	assert.Equal(t, 4, ix.Len())
}

// TestBuild_SelfLoopsAndDuplicatesRetained verifies that self-loops count as
// edges and duplicate pairs are all kept in the edge list.
func TestBuild_SelfLoopsAndDuplicatesRetained(t *testing.T) {
	a := []string{"u", "u", "u"}
	b := []string{"u", "v", "v"}
	w := []float64{3.0, 1.0, 2.0}

	ix, edges, err := edgelist.Build(a, b, w)
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())
	require.Len(t, edges, 3)

	// Self-loop keeps identical endpoints.
	assert.Equal(t, edges[0].From, edges[0].To)
	// The duplicate u—v pair appears twice with its own weights.
	assert.Equal(t, edges[1].From, edges[2].From)
	assert.Equal(t, edges[1].To, edges[2].To)
	assert.NotEqual(t, edges[1].Weight, edges[2].Weight)
}

// TestBuild_FiniteWeights verifies the opt-in non-finite weight rejection:
// default Build accepts NaN/Inf, WithFiniteWeights rejects them naming the row.
func TestBuild_FiniteWeights(t *testing.T) {
	a := []string{"a", "b"}
	b := []string{"b", "c"}

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		w := []float64{1.0, bad}

		// Default: carried through untouched.
		_, edges, err := edgelist.Build(a, b, w)
		require.NoError(t, err)
		require.Len(t, edges, 2)

		// Opt-in: rejected.
		_, _, err = edgelist.Build(a, b, w, edgelist.WithFiniteWeights())
		assert.ErrorIs(t, err, edgelist.ErrNonFiniteWeight)
	}
}

// TestBuild_NegativeWeightsAllowed verifies that sign carries no meaning for
// edge validity.
func TestBuild_NegativeWeightsAllowed(t *testing.T) {
	_, edges, err := edgelist.Build(
		[]string{"a"}, []string{"b"}, []float64{-7.5},
		edgelist.WithFiniteWeights(),
	)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, -7.5, edges[0].Weight)
}

// TestNewIndex verifies the standalone normalization step: bijection,
// round-trips, and length-mismatch rejection.
func TestNewIndex(t *testing.T) {
	ix, err := edgelist.NewIndex([]string{"x", "y"}, []string{"y", "z"})
	require.NoError(t, err)

	// Bijection: every label round-trips through its id.
	for _, label := range ix.Labels() {
		id, ok := ix.ID(label)
		require.True(t, ok)
		got, ok := ix.Label(id)
		require.True(t, ok)
		assert.Equal(t, label, got)
	}

	// Unknown label and out-of-range id report absence, not garbage.
	_, ok := ix.ID("nope")
	assert.False(t, ok)
	_, ok = ix.Label(-1)
	assert.False(t, ok)
	_, ok = ix.Label(ix.Len())
	assert.False(t, ok)

	// Endpoint slices must correspond row-wise.
	_, err = edgelist.NewIndex([]string{"a", "b"}, []string{"b"})
	assert.ErrorIs(t, err, edgelist.ErrLengthMismatch)
}

// TestIndex_LabelsReturnsCopy verifies mutating the returned slice does not
// corrupt the index.
func TestIndex_LabelsReturnsCopy(t *testing.T) {
	ix, err := edgelist.NewIndex([]string{"a"}, []string{"b"})
	require.NoError(t, err)

	labels := ix.Labels()
	labels[0] = "mutated"

	got, ok := ix.Label(0)
	require.True(t, ok)
	assert.Equal(t, "a", got)
}
