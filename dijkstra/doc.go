// Package dijkstra provides a precise, high-performance implementation of
// Dijkstra's shortest-path algorithm on weighted graphs with non-negative
// edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex
//     to all reachable vertices in O((V + E) log V) time.
//   - It is label-setting: vertices are finalized exactly once, in
//     non-decreasing order of distance, driven by an indexed min-heap
//     (package ixheap) with true decrease-key. Pushing a relaxation
//     candidate either inserts the vertex or lowers its live key; the heap
//     never holds two entries for the same vertex.
//   - The result is a table of (distance, predecessor) per vertex plus a
//     PathTo helper that rebuilds any shortest path from the predecessor
//     chain.
//
// When to use:
//
//   - Whenever you need exact shortest paths on a static graph whose
//     weights are all ≥ 0. For graphs with negative weights use package
//     bellmanford; for all-pairs tables use package floydwarshall.
//
// Key features:
//
//   - Functional options tune behavior without changing the signature.
//   - WithMaxDistance: stops exploring once the closest unfinalized vertex
//     lies beyond the cap, saving work in large graphs.
//   - WithInfEdgeThreshold: treats edges with weight ≥ threshold as
//     impassable walls.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V pops.
//   - Each edge relaxation is one heap Add (insert or decrease-key).
//   - Each heap operation costs O(log V); the heap never exceeds V entries.
//   - Space: O(V) for the distance/predecessor tables and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         a nil *core.List was passed.
//   - ErrSourceOutOfRange: the source index is outside [0, n).
//   - ErrNegativeWeight:   a negative edge weight was detected by the
//     upfront O(E) pre-scan; Dijkstra's guarantee does not hold on such
//     graphs, so the engine fails fast instead of producing wrong numbers.
//
// Unreachable vertices are not errors: they keep distance +Inf and
// predecessor core.None, and PathTo returns a nil path for them.
package dijkstra
