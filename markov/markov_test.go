// Package markov_test contains unit tests for the stochastic validator
// and the maximum-probability engine.
package markov_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraskyne/waypath/core"
	"github.com/maraskyne/waypath/markov"
)

// buildChain constructs the 3-state reference chain:
//
//	0→1 (p=0.6), 0→2 (p=0.4), 1→2 (p=1.0)
//
// The most probable path 0⇝2 is 0→1→2 with probability 0.6, beating the
// direct 0→2 transition at 0.4.
func buildChain(t *testing.T) *core.List {
	t.Helper()
	g, err := core.NewList(3, []core.Edge{
		{From: 0, To: 1, Weight: 0.6},
		{From: 0, To: 2, Weight: 0.4},
		{From: 1, To: 2, Weight: 1.0},
	}, core.WithDirected(true))
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validate: the external Markov-chain precondition checker.
// ------------------------------------------------------------------------

func TestValidate_AcceptsStochasticChain(t *testing.T) {
	require.NoError(t, markov.Validate(buildChain(t)))
}

func TestValidate_NilGraph(t *testing.T) {
	assert.ErrorIs(t, markov.Validate(nil), markov.ErrNilGraph)
}

func TestValidate_RejectsUndirected(t *testing.T) {
	g, err := core.NewList(2, []core.Edge{{From: 0, To: 1, Weight: 1.0}})
	require.NoError(t, err)
	assert.ErrorIs(t, markov.Validate(g), markov.ErrNotDirected)
}

func TestValidate_RejectsBadProbability(t *testing.T) {
	// Weight above 1 is not a probability.
	g, err := core.NewList(2, []core.Edge{
		{From: 0, To: 1, Weight: 1.5},
	}, core.WithDirected(true))
	require.NoError(t, err)
	assert.ErrorIs(t, markov.Validate(g), markov.ErrBadProbability)

	// Weight zero is rejected too: log-domain keys need p > 0.
	g, err = core.NewList(2, []core.Edge{
		{From: 0, To: 1, Weight: 0},
	}, core.WithDirected(true))
	require.NoError(t, err)
	assert.ErrorIs(t, markov.Validate(g), markov.ErrBadProbability)
}

func TestValidate_RejectsNonStochasticRow(t *testing.T) {
	// Outgoing weights of vertex 0 sum to 0.9, not 1.
	g, err := core.NewList(3, []core.Edge{
		{From: 0, To: 1, Weight: 0.5},
		{From: 0, To: 2, Weight: 0.4},
	}, core.WithDirected(true))
	require.NoError(t, err)
	assert.ErrorIs(t, markov.Validate(g), markov.ErrNotStochastic)
}

func TestValidate_AbsorbingStateExempt(t *testing.T) {
	// Vertex 1 has no outgoing transitions; that is fine.
	g, err := core.NewList(2, []core.Edge{
		{From: 0, To: 1, Weight: 1.0},
	}, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, markov.Validate(g))
}

func TestValidate_SumWithinEpsilon(t *testing.T) {
	// A rounding-level deviation from 1 must be tolerated.
	g, err := core.NewList(3, []core.Edge{
		{From: 0, To: 1, Weight: 0.3333333},
		{From: 0, To: 2, Weight: 0.6666667},
	}, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, markov.Validate(g))
}

// ------------------------------------------------------------------------
// 2. MostProbable: engine behavior.
// ------------------------------------------------------------------------

func TestMostProbable_PicksIndirectPath(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, markov.Validate(g))

	res, err := markov.MostProbable(g, markov.Source(0))
	require.NoError(t, err)

	// Probability 0.6 via 0→1→2, not the direct 0.4 transition.
	assert.InDelta(t, 1.0, res.Prob[0], 1e-12)
	assert.InDelta(t, 0.6, res.Prob[1], 1e-12)
	assert.InDelta(t, 0.6, res.Prob[2], 1e-12)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestMostProbable_UnreachableScoresZero(t *testing.T) {
	// Vertex 2 has no incoming transitions from the component of 0.
	g, err := core.NewList(3, []core.Edge{
		{From: 0, To: 1, Weight: 1.0},
		{From: 2, To: 0, Weight: 1.0},
	}, core.WithDirected(true))
	require.NoError(t, err)

	res, err := markov.MostProbable(g, markov.Source(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Prob[2])
	assert.Equal(t, core.None, res.Prev[2])

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestMostProbable_ValidationErrors(t *testing.T) {
	_, err := markov.MostProbable(nil)
	assert.ErrorIs(t, err, markov.ErrNilGraph)

	g := buildChain(t)
	_, err = markov.MostProbable(g, markov.Source(7))
	assert.ErrorIs(t, err, markov.ErrSourceOutOfRange)
}

func TestMostProbable_SingleVertex(t *testing.T) {
	g, err := core.NewList(1, nil, core.WithDirected(true))
	require.NoError(t, err)

	res, err := markov.MostProbable(g, markov.Source(0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Prob[0])
	assert.Equal(t, 0, res.Prev[0])
}

func TestMostProbable_LongChainStaysExact(t *testing.T) {
	// A deterministic chain of probability-1 transitions keeps score 1
	// through repeated exp(-(-log)) round trips.
	const n = 32
	edges := make([]core.Edge, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, core.Edge{From: v - 1, To: v, Weight: 1.0})
	}
	g, err := core.NewList(n, edges, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, markov.Validate(g))

	res, err := markov.MostProbable(g, markov.Source(0))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Prob[n-1], 1e-9)

	path, err := res.PathTo(n - 1)
	require.NoError(t, err)
	require.Len(t, path, n)
}

func TestMostProbable_Idempotent(t *testing.T) {
	g := buildChain(t)

	first, err := markov.MostProbable(g, markov.Source(0))
	require.NoError(t, err)
	second, err := markov.MostProbable(g, markov.Source(0))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Guard against accidental +Inf/NaN leaking through the log domain.
func TestMostProbable_ScoresAreProbabilities(t *testing.T) {
	g := buildChain(t)

	res, err := markov.MostProbable(g, markov.Source(0))
	require.NoError(t, err)
	for v, p := range res.Prob {
		assert.False(t, math.IsNaN(p) || p < 0 || p > 1, "Prob[%d]=%v is not a probability", v, p)
	}
}
