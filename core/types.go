// Package core defines the immutable graph containers consumed by the
// waypath engines: an adjacency-list form (List) for heap-driven
// single-source algorithms and a dense-matrix form (Matrix) for
// relaxation algorithms that sweep every vertex pair.
//
// Both containers are built exactly once from a vertex count and an edge
// set, validated eagerly, and never mutated afterwards. A built graph may
// therefore be shared freely across sequential or concurrent algorithm
// invocations without synchronization.
//
// This file declares Edge, Arc, the None predecessor sentinel, sentinel
// errors, and the Option set shared by NewList and NewMatrix.
//
// Errors:
//
//	ErrBadVertexCount   - vertex count is zero or negative.
//	ErrVertexOutOfRange - an edge endpoint (or query index) is outside [0, n).
//	ErrNonFiniteWeight  - an edge weight is NaN or ±Inf.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrBadVertexCount indicates a non-positive vertex count was requested.
	ErrBadVertexCount = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNonFiniteWeight indicates an edge weight that is NaN or ±Inf.
	// Absent edges are represented structurally, never by an infinite weight.
	ErrNonFiniteWeight = errors.New("core: edge weight must be finite")
)

// None is the predecessor sentinel meaning "no predecessor": either the
// vertex was never reached, or (in an all-pairs parent table) no finite
// edge ever connected the pair. The source vertex of a single-source
// result is its own predecessor, never None.
const None = -1

// Edge is an ordered (From, To, Weight) triple with integer vertex
// endpoints in [0, n). On an undirected graph each Edge is stored
// symmetrically in both containers.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge cost. Must be finite; sign restrictions
	// (non-negative for Dijkstra, (0,1] for Markov) are enforced by the
	// individual engines, not by the containers.
	Weight float64
}

// Arc is the adjacency-list view of an edge: the destination and weight
// as seen from a fixed source vertex.
type Arc struct {
	// To is the neighbor vertex index.
	To int

	// Weight is the cost of traversing to To.
	Weight float64
}

// options collects construction flags shared by List and Matrix.
type options struct {
	directed bool
}

// Option configures graph construction before any edge is stored.
type Option func(*options)

// WithDirected sets the directedness of the graph being built
// (true = one-way edges, false = each edge stored in both directions).
// Graphs are undirected by default.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}
