// Package floydwarshall: sentinel errors and the all-pairs Result table.
package floydwarshall

import (
	"errors"
	"fmt"

	"github.com/maraskyne/waypath/core"
)

// Sentinel errors returned by the Floyd-Warshall implementation.
var (
	// ErrNilGraph indicates that a nil *core.Matrix was passed.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrVertexOutOfRange indicates an accessor index outside [0, n).
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex index out of range")

	// ErrNegativeCycle indicates a path reconstruction was attempted on a
	// result whose NegCycle flag is set; predecessor chains may loop and
	// distances are not meaningful.
	ErrNegativeCycle = errors.New("floydwarshall: negative-weight cycle detected")
)

// Result is the all-pairs table produced by FloydWarshall. Both tables
// are flat row-major n×n buffers owned by the result, never by the
// input graph. When NegCycle is set no entry carries a guarantee.
type Result struct {
	// N is the vertex count; both tables are N×N.
	N int

	// Dist[v*N+w] is the shortest-path weight from v to w, or +Inf when
	// no path exists. The diagonal is 0 unless a negative cycle passes
	// through the vertex.
	Dist []float64

	// Prev[v*N+w] is the predecessor of w on a shortest path from v
	// (core.None when no finite path connects the pair). Prev[v*N+v] is
	// v itself.
	Prev []int

	// NegCycle reports that some diagonal entry went negative: the graph
	// contains a negative-weight cycle.
	NegCycle bool
}

// At returns the shortest-path weight from u to w.
//
// Complexity: O(1).
func (r *Result) At(u, w int) (float64, error) {
	if u < 0 || u >= r.N || w < 0 || w >= r.N {
		return 0, fmt.Errorf("At(%d,%d): %w", u, w, ErrVertexOutOfRange)
	}

	return r.Dist[u*r.N+w], nil
}

// PrevHop returns the predecessor of w on a shortest path from u, or
// core.None when no finite path connects the pair.
//
// Complexity: O(1).
func (r *Result) PrevHop(u, w int) (int, error) {
	if u < 0 || u >= r.N || w < 0 || w >= r.N {
		return core.None, fmt.Errorf("PrevHop(%d,%d): %w", u, w, ErrVertexOutOfRange)
	}

	return r.Prev[u*r.N+w], nil
}

// PathBetween reconstructs a shortest path from src to dst by following
// the src-row of the parent table backwards from dst. Returns
// ErrNegativeCycle when the result carries a negative cycle, a nil path
// (and nil error) when the pair is disconnected, and ErrVertexOutOfRange
// for invalid indices. The walk terminates in at most n steps.
//
// Complexity: O(path length).
func (r *Result) PathBetween(src, dst int) ([]int, error) {
	if r.NegCycle {
		return nil, fmt.Errorf("PathBetween(%d,%d): %w", src, dst, ErrNegativeCycle)
	}
	if src < 0 || src >= r.N || dst < 0 || dst >= r.N {
		return nil, fmt.Errorf("PathBetween(%d,%d): %w", src, dst, ErrVertexOutOfRange)
	}
	if r.Prev[src*r.N+dst] == core.None {
		return nil, nil // disconnected pair: a sentinel outcome, not an error
	}

	// Walk backwards along the src-row, bounded by n steps.
	path := make([]int, 0, r.N)
	current := dst
	for steps := 0; steps < r.N; steps++ {
		path = append(path, current)
		if current == src {
			break
		}
		current = r.Prev[src*r.N+current]
	}

	// Reverse in place to src→dst order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
