// Package markov: sentinel errors, the stochastic validator, functional
// options and the Result table for the maximum-probability-path engine.
package markov

import (
	"errors"
	"fmt"
	"math"

	"github.com/maraskyne/waypath/core"
)

// Epsilon is the tolerance used by Validate when checking that outgoing
// transition probabilities sum to 1.
const Epsilon = 1e-6

// Sentinel errors returned by the Markov engine and validator.
var (
	// ErrNilGraph indicates that a nil *core.List was passed.
	ErrNilGraph = errors.New("markov: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, n).
	ErrSourceOutOfRange = errors.New("markov: source vertex out of range")

	// ErrVertexOutOfRange indicates a destination index outside [0, n)
	// passed to Result.PathTo.
	ErrVertexOutOfRange = errors.New("markov: vertex index out of range")

	// ErrNotDirected indicates the graph is undirected; a Markov chain's
	// transitions are inherently one-way.
	ErrNotDirected = errors.New("markov: graph must be directed")

	// ErrBadProbability indicates a transition weight outside (0, 1].
	ErrBadProbability = errors.New("markov: transition probability must be in (0,1]")

	// ErrNotStochastic indicates a vertex whose outgoing weights do not
	// sum to 1 within Epsilon.
	ErrNotStochastic = errors.New("markov: outgoing probabilities must sum to 1")
)

// Options configures the behavior of the Markov engine.
type Options struct {
	Source int // The index of the source vertex
}

// Option represents a functional option for configuring MostProbable.
type Option func(*Options)

// Source sets the source vertex index. Range validation happens inside
// MostProbable against the actual graph.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// DefaultOptions returns an Options struct for the given source vertex.
func DefaultOptions(source int) Options {
	return Options{Source: source}
}

// Validate checks the Markov-chain preconditions on g: directedness,
// weight domain (0, 1], and row-stochastic outgoing weights (vertices
// with no outgoing arcs are exempt). Run it once per graph before
// handing the graph to MostProbable; the engine itself does not re-run
// these checks.
//
// Complexity: O(V + E).
func Validate(g *core.List) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Directed() {
		return ErrNotDirected
	}

	n := g.N()
	var v int
	var a core.Arc
	var sum float64
	for v = 0; v < n; v++ {
		arcs, _ := g.Neighbors(v) // v is in range by construction
		if len(arcs) == 0 {
			continue // absorbing states carry no constraint
		}
		sum = 0
		for _, a = range arcs {
			if a.Weight <= 0 || a.Weight > 1 {
				return fmt.Errorf("edge %d→%d weight=%v: %w", v, a.To, a.Weight, ErrBadProbability)
			}
			sum += a.Weight
		}
		if math.Abs(sum-1) > Epsilon {
			return fmt.Errorf("vertex %d sums to %v: %w", v, sum, ErrNotStochastic)
		}
	}

	return nil
}

// Result is the maximum-probability table produced by MostProbable.
type Result struct {
	// Source is the vertex all probabilities are measured from.
	Source int

	// Prob[v] is the probability of the most probable path from Source
	// to v (1 for the source itself, 0 if v is unreachable).
	Prob []float64

	// Prev[v] is the predecessor of v on a most probable path.
	// Prev[Source] is Source itself; unreachable vertices hold core.None.
	Prev []int
}

// PathTo reconstructs the most probable path from the source to dst by
// following predecessor links. Returns a nil path (and nil error) when
// dst is unreachable, and ErrVertexOutOfRange for an invalid index.
//
// Complexity: O(path length).
func (r *Result) PathTo(dst int) ([]int, error) {
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
