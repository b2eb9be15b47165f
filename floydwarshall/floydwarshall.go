package floydwarshall

import (
	"math"

	"github.com/maraskyne/waypath/core"
)

// FloydWarshall computes all-pairs shortest paths on the dense graph g.
//
// The distance table is seeded from the adjacency snapshot (diagonal 0,
// +Inf for missing edges) and the parent table with parent[v][w] = v for
// every finite entry. The triple loop then relaxes every pair through
// every intermediate vertex in a fixed k→v→w order, copying the parent
// from the k-row on improvement. A negative-weight cycle exists iff some
// diagonal entry ends up below zero; the diagonal is checked once, after
// the loops complete, never during them (intermediate diagonal values
// are not final).
//
// When no cycle is detected, Dist holds the true shortest-path weight
// for every ordered pair and the parent rows reconstruct shortest paths.
//
// Complexity:
//
//   - Time:  O(V³), no allocations inside the hot loops.
//   - Space: O(V²) for the returned tables.
func FloydWarshall(g *core.Matrix) (*Result, error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Seed the distance table from the adjacency snapshot; the copy
	//    is owned by the result, so the shared graph is never written.
	n := g.N()
	dist := g.Dense()

	// 3) Seed the parent table: v wherever a finite entry exists
	//    (the 0-diagonal included), None elsewhere.
	prev := make([]int, n*n)
	var v, w int
	for v = 0; v < n; v++ {
		base := v * n
		for w = 0; w < n; w++ {
			if math.IsInf(dist[base+w], 1) {
				prev[base+w] = core.None
			} else {
				prev[base+w] = v
			}
		}
	}

	// Predeclare all loop counters and temporaries; nothing allocates
	// inside the triple loop.
	var (
		k            int     // intermediate vertex
		baseK, baseV int     // row offsets in the flat buffers
		dvk, dkw     float64 // current distances v→k and k→w
		cand         float64 // candidate distance v→k→w
	)

	// 4) Triple loop in fixed k→v→w order for deterministic accumulation.
	for k = 0; k < n; k++ {
		baseK = k * n

		for v = 0; v < n; v++ {
			dvk = dist[v*n+k]
			if math.IsInf(dvk, 1) {
				continue // v cannot reach k: no path via k can improve v→w
			}
			baseV = v * n

			for w = 0; w < n; w++ {
				dkw = dist[baseK+w]
				if math.IsInf(dkw, 1) {
					continue // k cannot reach w
				}
				cand = dvk + dkw
				if cand < dist[baseV+w] { // strict improvement only
					dist[baseV+w] = cand
					prev[baseV+w] = prev[baseK+w]
				}
			}
		}
	}

	// 5) Negative-cycle check: one diagonal scan, strictly after the
	//    triple loop has finished.
	res := &Result{N: n, Dist: dist, Prev: prev}
	for v = 0; v < n; v++ {
		if dist[v*n+v] < 0 {
			res.NegCycle = true

			break
		}
	}

	return res, nil
}
