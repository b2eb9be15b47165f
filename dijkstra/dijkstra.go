package dijkstra

import (
	"fmt"
	"math"

	"github.com/maraskyne/waypath/core"
	"github.com/maraskyne/waypath/ixheap"
)

// Dijkstra computes shortest distances from the source vertex
// (Options.Source, default 0) to all other vertices in the weighted
// graph g. It accepts functional options to customize behavior
// (MaxDistance, InfEdgeThreshold).
//
// Returns a Result table: Dist[v] is the minimum distance (+Inf if
// unreachable) and Prev[v] the predecessor on a shortest path
// (core.None if unreachable, Source for the source itself). For graphs
// with non-negative weights the predecessor chain of every reachable
// vertex reconstructs a true shortest path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must lie in [0, n) (ErrSourceOutOfRange).
//  3. No edge may have negative weight (ErrNegativeWeight, O(E) pre-scan).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.List, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions(0)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate Source lies inside the vertex range.
	n := g.N()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("source %d of %d vertices: %w", cfg.Source, n, ErrSourceOutOfRange)
	}

	// 4) Pre-scan all arcs to detect negative weights. Fail fast instead
	//    of finalizing wrong labels deep into the search.
	var v int
	var a core.Arc
	for v = 0; v < n; v++ {
		arcs, _ := g.Neighbors(v) // v is in range by construction
		for _, a = range arcs {
			if a.Weight < 0 {
				return nil, fmt.Errorf("edge %d→%d weight=%v: %w", v, a.To, a.Weight, ErrNegativeWeight)
			}
		}
	}

	// 5) Allocate the per-invocation state and run the engine.
	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.result, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.List  // the input graph; read-only within Dijkstra
	options Options     // configuration (Source, thresholds)
	result  *Result     // distance/predecessor table under construction
	visited []bool      // whether a vertex's distance is finalized
	pq      *ixheap.Heap // indexed min-heap of (vertex, key, prev) triples
}

// newRunner initializes distances to +Inf, predecessors to core.None,
// and pushes the source with key 0 and itself as predecessor.
func newRunner(g *core.List, cfg Options) (*runner, error) {
	n := g.N()

	dist := make([]float64, n)
	prev := make([]int, n)
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		dist[v] = inf
		prev[v] = core.None
	}

	pq, err := ixheap.New(n)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: heap: %w", err)
	}

	r := &runner{
		g:       g,
		options: cfg,
		result:  &Result{Source: cfg.Source, Dist: dist, Prev: prev},
		visited: make([]bool, n),
		pq:      pq,
	}

	// The source is its own predecessor at distance zero.
	if err = pq.Add(ixheap.Item{Vertex: cfg.Source, Key: 0, Prev: cfg.Source}); err != nil {
		return nil, fmt.Errorf("dijkstra: push source: %w", err)
	}

	return r, nil
}

// process is the core label-setting loop: repeatedly extract the
// minimum-key vertex, finalize its distance and predecessor, and relax
// its outgoing arcs.
//
// Loop termination:
//
//   - The heap becomes empty (all reachable vertices finalized), or
//   - the minimum key exceeds MaxDistance (nothing closer remains).
func (r *runner) process() error {
	for !r.pq.Empty() {
		// 1) Pop the smallest-key entry from the heap.
		it, err := r.pq.Pop()
		if err != nil {
			return fmt.Errorf("dijkstra: pop: %w", err)
		}

		// 2) Skip a vertex whose label is already frozen. With a true
		//    decrease-key heap this cannot fire, but the guard keeps the
		//    engine honest if the loop is ever reordered.
		if r.visited[it.Vertex] {
			continue
		}

		// 3) Beyond the cap nothing closer can remain: stop without
		//    finalizing this vertex.
		if it.Key > r.options.MaxDistance {
			break
		}

		// 4) Finalize: the popped key and predecessor are now exact.
		r.visited[it.Vertex] = true
		r.result.Dist[it.Vertex] = it.Key
		r.result.Prev[it.Vertex] = it.Prev

		// 5) Relax all outgoing arcs of the finalized vertex.
		if err = r.relax(it.Vertex, it.Key); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every arc out of u (finalized at distance du) and
// pushes improved candidates into the heap. The heap's Add performs
// insert-or-decrease-key, so no duplicate entries ever accumulate.
func (r *runner) relax(u int, du float64) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	var a core.Arc
	var candidate float64
	for _, a = range arcs {
		// Skip edges marked impassable by the threshold.
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		candidate = du + a.Weight

		// Candidates beyond the cap are never worth queueing.
		if candidate > r.options.MaxDistance {
			continue
		}

		// A finalized neighbor already holds its exact distance; with
		// non-negative weights no candidate can undercut it.
		if r.visited[a.To] {
			continue
		}

		// Insert-or-decrease: the heap keeps only the best live key.
		if err = r.pq.Add(ixheap.Item{Vertex: a.To, Key: candidate, Prev: u}); err != nil {
			return fmt.Errorf("dijkstra: push %d: %w", a.To, err)
		}
	}

	return nil
}
