package core

import (
	"fmt"
	"math"
)

// List is the adjacency-list graph container. For every vertex it holds
// the ordered sequence of outgoing arcs, in edge-insertion order.
// Duplicate (From, To) pairs accumulate as separate arcs.
//
// List is immutable after NewList returns and safe for concurrent reads.
type List struct {
	directed  bool
	arcs      [][]Arc // arcs[v] = outgoing arcs of vertex v
	edgeCount int     // number of input edges (not arc entries)
}

// NewList builds an adjacency-list graph with n vertices from the given
// edge set. On an undirected graph (the default) every non-loop edge is
// inserted in both directions.
//
// Validation (in order):
//  1. n must be positive (ErrBadVertexCount).
//  2. Every edge endpoint must lie in [0, n) (ErrVertexOutOfRange).
//  3. Every edge weight must be finite (ErrNonFiniteWeight).
//
// Complexity: O(V + E) time and space.
func NewList(n int, edges []Edge, opts ...Option) (*List, error) {
	// 1) Reject a non-positive vertex count before any allocation.
	if n <= 0 {
		return nil, fmt.Errorf("NewList: n=%d: %w", n, ErrBadVertexCount)
	}

	// 2) Apply construction options.
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Validate the whole edge set before storing anything, so a failed
	//    construction never leaves a half-built graph behind.
	var e Edge
	for _, e = range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("NewList: edge %d→%d: %w", e.From, e.To, ErrVertexOutOfRange)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("NewList: edge %d→%d weight=%v: %w", e.From, e.To, e.Weight, ErrNonFiniteWeight)
		}
	}

	// 4) Store arcs in input order; mirror non-loop edges when undirected.
	arcs := make([][]Arc, n)
	for _, e = range edges {
		arcs[e.From] = append(arcs[e.From], Arc{To: e.To, Weight: e.Weight})
		if !cfg.directed && e.From != e.To {
			arcs[e.To] = append(arcs[e.To], Arc{To: e.From, Weight: e.Weight})
		}
	}

	return &List{
		directed:  cfg.directed,
		arcs:      arcs,
		edgeCount: len(edges),
	}, nil
}

// N returns the number of vertices.
func (l *List) N() int { return len(l.arcs) }

// Directed reports whether the graph stores one-way edges.
func (l *List) Directed() bool { return l.directed }

// EdgeCount returns the number of edges the graph was built from
// (undirected edges count once).
func (l *List) EdgeCount() int { return l.edgeCount }

// Neighbors returns the outgoing arcs of vertex v in insertion order.
// The returned slice is shared with the graph's internal storage and
// must be treated as read-only.
//
// Complexity: O(1).
func (l *List) Neighbors(v int) ([]Arc, error) {
	if v < 0 || v >= len(l.arcs) {
		return nil, fmt.Errorf("Neighbors: vertex %d: %w", v, ErrVertexOutOfRange)
	}

	return l.arcs[v], nil
}
