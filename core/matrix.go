package core

import (
	"fmt"
	"math"
)

// Matrix is the dense adjacency-matrix graph container. Weights live in a
// single flat row-major buffer: entry (u, w) is data[u*n+w]. Off-diagonal
// entries default to +Inf ("no edge"); the diagonal is 0 by construction.
// Duplicate (From, To) pairs overwrite earlier weights (last write wins).
//
// Matrix is immutable after NewMatrix returns and safe for concurrent
// reads. Distance and parent tables are never stored here: engines
// allocate their own scratch and return it with the result.
type Matrix struct {
	n        int
	directed bool
	data     []float64 // row-major n×n weights
}

// NewMatrix builds a dense adjacency matrix with n vertices from the
// given edge set. On an undirected graph (the default) every edge is
// written symmetrically.
//
// Validation (in order):
//  1. n must be positive (ErrBadVertexCount).
//  2. Every edge endpoint must lie in [0, n) (ErrVertexOutOfRange).
//  3. Every edge weight must be finite (ErrNonFiniteWeight).
//
// Complexity: O(V² + E) time, O(V²) space.
func NewMatrix(n int, edges []Edge, opts ...Option) (*Matrix, error) {
	// 1) Reject a non-positive vertex count before allocating n² floats.
	if n <= 0 {
		return nil, fmt.Errorf("NewMatrix: n=%d: %w", n, ErrBadVertexCount)
	}

	// 2) Apply construction options.
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Validate the whole edge set up front.
	var e Edge
	for _, e = range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("NewMatrix: edge %d→%d: %w", e.From, e.To, ErrVertexOutOfRange)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("NewMatrix: edge %d→%d weight=%v: %w", e.From, e.To, e.Weight, ErrNonFiniteWeight)
		}
	}

	// 4) Initialize the flat buffer: 0 on the diagonal, +Inf elsewhere.
	data := make([]float64, n*n)
	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			if i != j {
				data[base+j] = inf
			}
		}
	}

	// 5) Write edge weights; later duplicates overwrite earlier ones.
	for _, e = range edges {
		data[e.From*n+e.To] = e.Weight
		if !cfg.directed {
			data[e.To*n+e.From] = e.Weight
		}
	}

	return &Matrix{n: n, directed: cfg.directed, data: data}, nil
}

// N returns the number of vertices.
func (m *Matrix) N() int { return m.n }

// Directed reports whether the graph stores one-way edges.
func (m *Matrix) Directed() bool { return m.directed }

// At returns the weight of the (u, w) entry: the edge weight if one was
// stored, +Inf for "no edge", 0 on the diagonal unless a self-loop
// overwrote it.
//
// Complexity: O(1).
func (m *Matrix) At(u, w int) (float64, error) {
	if u < 0 || u >= m.n || w < 0 || w >= m.n {
		return 0, fmt.Errorf("At(%d,%d): %w", u, w, ErrVertexOutOfRange)
	}

	return m.data[u*m.n+w], nil
}

// Dense returns a copy of the row-major weight buffer. Engines use it to
// seed their own distance scratch (Floyd-Warshall starts from exactly
// this table) without ever touching the graph's storage.
//
// Complexity: O(V²).
func (m *Matrix) Dense() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}
