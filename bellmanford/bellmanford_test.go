// Package bellmanford_test contains unit tests for the Bellman-Ford
// engine: validation, correctness with and without negative weights,
// negative-cycle detection, cross-checks against Dijkstra, and the
// single-vertex boundary.
package bellmanford_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraskyne/waypath/bellmanford"
	"github.com/maraskyne/waypath/core"
	"github.com/maraskyne/waypath/dijkstra"
)

// diamondEdges is the 4-vertex undirected reference graph:
// 0—1 (1.0), 1—2 (2.0), 0—2 (5.0), 2—3 (1.0).
var diamondEdges = []core.Edge{
	{From: 0, To: 1, Weight: 1.0},
	{From: 1, To: 2, Weight: 2.0},
	{From: 0, To: 2, Weight: 5.0},
	{From: 2, To: 3, Weight: 1.0},
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestBellmanFord_NilGraph(t *testing.T) {
	_, err := bellmanford.BellmanFord(nil)
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)
}

func TestBellmanFord_SourceOutOfRange(t *testing.T) {
	g, err := core.NewMatrix(2, nil)
	require.NoError(t, err)

	_, err = bellmanford.BellmanFord(g, bellmanford.Source(2))
	assert.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
	_, err = bellmanford.BellmanFord(g, bellmanford.Source(-1))
	assert.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
}

// ------------------------------------------------------------------------
// 2. Correctness on non-negative weights (agrees with Dijkstra).
// ------------------------------------------------------------------------

func TestBellmanFord_Diamond(t *testing.T) {
	g, err := core.NewMatrix(4, diamondEdges)
	require.NoError(t, err)

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	require.NoError(t, err)
	require.False(t, res.NegCycle)

	assert.Equal(t, []float64{0, 1, 3, 4}, res.Dist)
	assert.Equal(t, []int{0, 0, 1, 2}, res.Prev)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestBellmanFord_AgreesWithDijkstra(t *testing.T) {
	// Same graph in both representations; every source must agree.
	lg, err := core.NewList(4, diamondEdges)
	require.NoError(t, err)
	mg, err := core.NewMatrix(4, diamondEdges)
	require.NoError(t, err)

	for src := 0; src < 4; src++ {
		dj, errD := dijkstra.Dijkstra(lg, dijkstra.Source(src))
		require.NoError(t, errD)
		bf, errB := bellmanford.BellmanFord(mg, bellmanford.Source(src))
		require.NoError(t, errB)
		require.False(t, bf.NegCycle)
		assert.Equal(t, dj.Dist, bf.Dist, "distance tables differ for source %d", src)
	}
}

// ------------------------------------------------------------------------
// 3. Negative weights and negative cycles.
// ------------------------------------------------------------------------

func TestBellmanFord_NegativeEdgeNoCycle(t *testing.T) {
	// Directed: 0→1 (4), 0→2 (2), 2→1 (-1). Best path to 1 is 0→2→1 = 1.
	g, err := core.NewMatrix(3, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 2},
		{From: 2, To: 1, Weight: -1},
	}, core.WithDirected(true))
	require.NoError(t, err)

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	require.NoError(t, err)
	require.False(t, res.NegCycle)
	assert.Equal(t, []float64{0, 1, 2}, res.Dist)

	path, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, path)
}

func TestBellmanFord_NegativeCycleFlagged(t *testing.T) {
	// Directed 2-cycle 0→1 (-1), 1→0 (-1): every loop lowers the total.
	g, err := core.NewMatrix(2, []core.Edge{
		{From: 0, To: 1, Weight: -1},
		{From: 1, To: 0, Weight: -1},
	}, core.WithDirected(true))
	require.NoError(t, err)

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.True(t, res.NegCycle, "the -1/-1 two-cycle must be flagged")

	// Path reconstruction must refuse to walk a possibly looping chain.
	_, err = res.PathTo(1)
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableCycleNotFlagged(t *testing.T) {
	// The negative cycle lives in a component the source never reaches;
	// distances for the reachable part stay correct and no flag is set.
	g, err := core.NewMatrix(4, []core.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 2, To: 3, Weight: -1},
		{From: 3, To: 2, Weight: -1},
	}, core.WithDirected(true))
	require.NoError(t, err)

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.False(t, res.NegCycle)
	assert.Equal(t, 3.0, res.Dist[1])
	assert.True(t, math.IsInf(res.Dist[2], 1))
	assert.Equal(t, core.None, res.Prev[2])
}

// ------------------------------------------------------------------------
// 4. Representation semantics, boundary and idempotence.
// ------------------------------------------------------------------------

func TestBellmanFord_DuplicateEdgeLastWins(t *testing.T) {
	// The matrix container keeps only the last weight for (0,1).
	g, err := core.NewMatrix(2, []core.Edge{
		{From: 0, To: 1, Weight: 9},
		{From: 0, To: 1, Weight: 2},
	}, core.WithDirected(true))
	require.NoError(t, err)

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist[1])
}

func TestBellmanFord_SingleVertex(t *testing.T) {
	g, err := core.NewMatrix(1, nil)
	require.NoError(t, err)

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.False(t, res.NegCycle)
	assert.Equal(t, 0.0, res.Dist[0])
	assert.Equal(t, 0, res.Prev[0])
}

func TestBellmanFord_Idempotent(t *testing.T) {
	g, err := core.NewMatrix(4, diamondEdges)
	require.NoError(t, err)

	first, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	require.NoError(t, err)
	second, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
