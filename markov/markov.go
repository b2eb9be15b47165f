package markov

import (
	"fmt"
	"math"

	"github.com/maraskyne/waypath/core"
	"github.com/maraskyne/waypath/ixheap"
)

// MostProbable computes, for every vertex, the probability of the most
// probable path from the source vertex (Options.Source, default 0) in a
// stochastic transition graph. The search reuses the Dijkstra skeleton
// with keys in the negative-log domain, so path probabilities multiply
// while heap keys add.
//
// The graph is assumed to satisfy the Markov preconditions (directed,
// weights in (0,1], row-stochastic); run Validate once beforehand —
// MostProbable does not repeat those checks.
//
// Returns a Result table: Prob[v] is the best path probability (0 if v
// is unreachable, 1 for the source) and Prev[v] the predecessor on such
// a path. Ties may resolve to either maximal path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func MostProbable(g *core.List, opts ...Option) (*Result, error) {
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

	// 3) Allocate the result table: probability 0 (unreached), no
	//    predecessor. The source scores probability 1 once finalized.
	prob := make([]float64, n)
	prev := make([]int, n)
	for v := 0; v < n; v++ {
		prev[v] = core.None
	}
	visited := make([]bool, n)

	// 4) Seed the heap with the source at key 0 = -log(1).
	pq, err := ixheap.New(n)
	if err != nil {
		return nil, fmt.Errorf("markov: heap: %w", err)
	}
	if err = pq.Add(ixheap.Item{Vertex: cfg.Source, Key: 0, Prev: cfg.Source}); err != nil {
		return nil, fmt.Errorf("markov: push source: %w", err)
	}

	// 5) Main loop: extract the smallest negative-log key, i.e. the
	//    largest remaining path probability, finalize, relax.
	var it ixheap.Item
	var p, pNew float64
	var a core.Arc
	for !pq.Empty() {
		if it, err = pq.Pop(); err != nil {
			return nil, fmt.Errorf("markov: pop: %w", err)
		}
		if visited[it.Vertex] {
			continue
		}

		// Recover the probability from the log-domain key.
		p = math.Exp(-it.Key)
		visited[it.Vertex] = true
		prob[it.Vertex] = p
		prev[it.Vertex] = it.Prev

		// Relax outgoing transitions: extending the path multiplies its
		// probability, which adds -log(weight) to the key.
		arcs, _ := g.Neighbors(it.Vertex) // in range by construction
		for _, a = range arcs {
			if visited[a.To] {
				continue
			}
			pNew = p * a.Weight
			if err = pq.Add(ixheap.Item{Vertex: a.To, Key: -math.Log(pNew), Prev: it.Vertex}); err != nil {
				return nil, fmt.Errorf("markov: push %d: %w", a.To, err)
			}
		}
	}

	return &Result{Source: cfg.Source, Prob: prob, Prev: prev}, nil
}
