package bellmanford

import (
	"fmt"
	"math"

	"github.com/maraskyne/waypath/core"
)

// BellmanFord computes shortest distances from the source vertex
// (Options.Source, default 0) to all other vertices in the dense graph
// g, tolerating negative edge weights.
//
// The engine runs the textbook bound: n-1 relaxation rounds over every
// (u, w) entry with a finite weight, followed by exactly one detection
// round. If the detection round still strictly improves any distance, a
// negative-weight cycle is reachable from the source: the Result's
// NegCycle flag is set and no further distances are guaranteed.
//
// When no cycle is detected, Dist holds true shortest-path weights and
// predecessor chains reconstruct shortest paths, matching Dijkstra
// whenever all weights are non-negative.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must lie in [0, n) (ErrSourceOutOfRange).
//
// Complexity:
//
//   - Time:  O(V³)
//   - Space: O(V) beyond the O(V²) adjacency snapshot.
func BellmanFord(g *core.Matrix, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions(0)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil and the source is in range.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.N()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("source %d of %d vertices: %w", cfg.Source, n, ErrSourceOutOfRange)
	}

	// 3) Snapshot the adjacency into a flat row-major buffer once, so
	//    the hot loops below never touch the shared graph.
	adj := g.Dense()

	// 4) Initialize the result table: +Inf / None everywhere except the
	//    source, which sits at distance 0 with itself as predecessor.
	dist := make([]float64, n)
	prev := make([]int, n)
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		dist[v] = inf
		prev[v] = core.None
	}
	dist[cfg.Source] = 0
	prev[cfg.Source] = cfg.Source

	// Predeclare loop counters and temporaries used across all rounds.
	var (
		round, w, u int     // loop indices
		wgt         float64 // edge weight u→w
		candidate   float64 // dist[u] + wgt
	)

	// 5) Main relaxation: n-1 rounds over every ordered pair (u, w) with
	//    a finite entry. After round k every shortest path of at most
	//    k+1 edges is exact.
	for round = 0; round < n-1; round++ {
		for w = 0; w < n; w++ {
			for u = 0; u < n; u++ {
				wgt = adj[u*n+w]
				if math.IsInf(wgt, 1) {
					continue // no edge u→w
				}
				candidate = dist[u] + wgt
				if candidate < dist[w] {
					dist[w] = candidate
					prev[w] = u
				}
			}
		}
	}

	// 6) Detection round: any remaining strict improvement proves a
	//    negative-weight cycle reachable from the source.
	res := &Result{Source: cfg.Source, Dist: dist, Prev: prev}
	for w = 0; w < n; w++ {
		for u = 0; u < n; u++ {
			wgt = adj[u*n+w]
			if math.IsInf(wgt, 1) {
				continue
			}
			if dist[u]+wgt < dist[w] {
				res.NegCycle = true

				return res, nil
			}
		}
	}

	return res, nil
}
