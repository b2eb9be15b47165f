// Package dijkstra: sentinel errors, functional options and the Result
// table for the single-source shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/maraskyne/waypath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.List was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Dijkstra requires all weights ≥ 0.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrVertexOutOfRange indicates a destination index outside [0, n)
	// passed to Result.PathTo.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrBadMaxDistance indicates a negative MaxDistance, which is not
	// meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive InfEdgeThreshold, which
	// would treat every edge (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra engine.
//
// Source           – index of the starting vertex (must lie in [0, n)).
// MaxDistance      – cap on distances to explore; vertices beyond it are
//
//	never finalized. Must be ≥ 0. Default +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are treated as
//
//	impassable. Must be > 0. Default +Inf (no walls).
type Options struct {
	Source           int     // The index of the source vertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the source vertex index. Range validation happens inside
// Dijkstra against the actual graph.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithMaxDistance caps exploration: once the closest unfinalized vertex
// lies beyond max, the search stops. Must be non-negative; negative
// values panic with ErrBadMaxDistance (invalid configuration is a
// programming error, surfaced early).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as
// impassable obstacles. Must be positive; zero or negative values panic
// with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults for the given source vertex:
//   - MaxDistance:      +Inf (explore everything reachable).
//   - InfEdgeThreshold: +Inf (no edge treated as impassable).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result is the single-source shortest-path table produced by Dijkstra.
// It is owned by the caller; the input graph is never touched.
type Result struct {
	// Source is the vertex all distances are measured from.
	Source int

	// Dist[v] is the shortest-path weight from Source to v, or +Inf if v
	// is unreachable.
	Dist []float64

	// Prev[v] is the predecessor of v on a shortest path. Prev[Source] is
	// Source itself; unreachable vertices hold core.None.
	Prev []int
}

// PathTo reconstructs the shortest path from the source to dst by
// following predecessor links. Returns a nil path (and nil error) when
// dst is unreachable, and ErrVertexOutOfRange for an invalid index.
// The walk terminates in at most n steps.
//
// Complexity: O(path length).
func (r *Result) PathTo(dst int) ([]int, error) {
	return walkPrev(r.Prev, r.Source, dst)
}

// walkPrev is the shared predecessor-chain walker: it follows prev links
// from dst until it reaches src (whose predecessor is itself) or a None
// link (unreachable), then reverses the collected vertices.
func walkPrev(prev []int, src, dst int) ([]int, error) {
	n := len(prev)
	if dst < 0 || dst >= n {
		return nil, fmt.Errorf("PathTo(%d): %w", dst, ErrVertexOutOfRange)
	}
	if prev[dst] == core.None {
		return nil, nil // unreachable: a sentinel outcome, not an error
	}

	// Collect dst..src backwards; each vertex appears at most once, so
	// the walk is bounded by n steps.
	path := make([]int, 0, n)
	current := dst
	for steps := 0; steps < n; steps++ {
		path = append(path, current)
		if current == src {
			break
		}
		current = prev[current]
	}

	// Reverse in place to get source→destination order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
