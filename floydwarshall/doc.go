// Package floydwarshall computes all-pairs shortest paths on dense
// weighted graphs via the classical O(V³) dynamic-programming
// relaxation, with negative-cycle detection on the diagonal.
//
// Overview:
//
//   - The distance table starts as a copy of the adjacency matrix
//     (diagonal 0, +Inf for missing edges) and the parent table holds
//     parent[v][w] = v wherever a finite edge exists. For each
//     intermediate vertex k, every pair (v, w) is relaxed through k in a
//     fixed k→v→w loop order; on improvement the parent entry is taken
//     from the k-row (parent[v][w] = parent[k][w]), keeping predecessor
//     chains consistent.
//   - Negative weights are allowed. After the triple loop — and only
//     after: intermediate diagonal values are not final — a single scan
//     of the diagonal detects negative-weight cycles: any dist[v][v] < 0
//     sets the result's NegCycle flag.
//
// Cross-algorithm guarantee:
//
//   - When no negative cycle exists, row s of the all-pairs table equals
//     the Bellman-Ford (and, for non-negative weights, Dijkstra) result
//     from source s, for every s. This is the baseline the single-source
//     engines are tested against.
//
// Complexity:
//
//   - Time:  O(V³), no allocations inside the hot loops.
//   - Space: O(V²) for the result's distance and parent tables.
//
// Errors (sentinel):
//
//   - ErrNilGraph         if the graph is nil.
//   - ErrVertexOutOfRange if an accessor index is outside [0, n).
//   - ErrNegativeCycle    if PathBetween is called with NegCycle set.
package floydwarshall
