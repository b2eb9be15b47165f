// Package bellmanford computes single-source shortest paths on dense
// weighted graphs that may contain negative edge weights, and detects
// negative-weight cycles reachable from the source.
//
// Overview:
//
//   - Bellman-Ford relaxes every matrix entry for n-1 rounds: after round
//     k, every shortest path using at most k edges is exact. A final
//     detection round follows; if any edge still strictly improves a
//     distance, a negative-weight cycle is reachable and the result's
//     NegCycle flag is set.
//   - Unlike the label-setting Dijkstra engine, no priority queue is
//     needed and negative weights are fine — the price is O(V³) time on
//     the dense matrix representation.
//
// Negative cycles:
//
//   - A detected cycle is an algorithmic outcome, not an error: the
//     engine returns a Result with NegCycle set and makes no guarantee
//     about the distance table's contents. PathTo refuses to walk the
//     predecessor chain in that state (ErrNegativeCycle), since the chain
//     may loop.
//
// Cross-algorithm guarantee:
//
//   - When no negative cycle is detected, the distance table matches the
//     Dijkstra result on any graph whose weights are all non-negative.
//
// Complexity:
//
//   - Time:  O(V³) (V-1 rounds over the V×V matrix, plus one detection round)
//   - Space: O(V) beyond the adjacency snapshot.
//
// Errors (sentinel):
//
//   - ErrNilGraph         if the graph is nil.
//   - ErrSourceOutOfRange if the source index is outside [0, n).
//   - ErrVertexOutOfRange if PathTo is given an invalid destination.
//   - ErrNegativeCycle    if PathTo is called on a result with NegCycle set.
package bellmanford
