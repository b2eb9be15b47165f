// Package bellmanford: sentinel errors, functional options and the
// Result table for the Bellman-Ford engine.
package bellmanford

import (
	"errors"
	"fmt"

	"github.com/maraskyne/waypath/core"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Matrix was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, n).
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrVertexOutOfRange indicates a destination index outside [0, n)
	// passed to Result.PathTo.
	ErrVertexOutOfRange = errors.New("bellmanford: vertex index out of range")

	// ErrNegativeCycle indicates a path reconstruction was attempted on a
	// result whose NegCycle flag is set; predecessor chains may loop and
	// distances are not meaningful.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")
)

// Options configures the behavior of the Bellman-Ford engine.
type Options struct {
	Source int // The index of the source vertex
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the source vertex index. Range validation happens inside
// BellmanFord against the actual graph.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// DefaultOptions returns an Options struct for the given source vertex.
func DefaultOptions(source int) Options {
	return Options{Source: source}
}

// Result is the single-source table produced by BellmanFord. When
// NegCycle is set the distance and predecessor entries carry no
// guarantee; callers must check the flag before trusting either.
type Result struct {
	// Source is the vertex all distances are measured from.
	Source int

	// Dist[v] is the shortest-path weight from Source to v, or +Inf if v
	// is unreachable. Not meaningful when NegCycle is set.
	Dist []float64

	// Prev[v] is the predecessor of v on a shortest path. Prev[Source]
	// is Source itself; unreachable vertices hold core.None.
	Prev []int

	// NegCycle reports that the detection round still improved a
	// distance: a negative-weight cycle is reachable from Source.
	NegCycle bool
}

// PathTo reconstructs the shortest path from the source to dst by
// following predecessor links. Returns ErrNegativeCycle when the result
// carries a negative cycle, a nil path (and nil error) when dst is
// unreachable, and ErrVertexOutOfRange for an invalid index.
//
// Complexity: O(path length).
func (r *Result) PathTo(dst int) ([]int, error) {
	if r.NegCycle {
		return nil, fmt.Errorf("PathTo(%d): %w", dst, ErrNegativeCycle)
	}
	n := len(r.Prev)
	if dst < 0 || dst >= n {
		return nil, fmt.Errorf("PathTo(%d): %w", dst, ErrVertexOutOfRange)
	}
	if r.Prev[dst] == core.None {
		return nil, nil // unreachable: a sentinel outcome, not an error
	}

	// Walk backwards from dst to the source, bounded by n steps.
	path := make([]int, 0, n)
	current := dst
	for steps := 0; steps < n; steps++ {
		path = append(path, current)
		if current == r.Source {
			break
		}
		current = r.Prev[current]
	}

	// Reverse in place to source→destination order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
