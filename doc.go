// Package waypath is an in-memory toolkit for computing shortest and
// most-probable paths over weighted graphs.
//
// 🚀 What is waypath?
//
//	A small, focused, pure-Go library that brings together the classical
//	path-relaxation algorithms behind one consistent API:
//		• Core containers: immutable adjacency-list and dense-matrix graphs
//		• Indexed min-heap: O(log n) insert/extract with true decrease-key
//		• Dijkstra: single-source shortest paths on non-negative weights
//		• Markov: maximum-probability paths on stochastic transition graphs
//		• Bellman-Ford: single-source with negative-cycle detection
//		• Floyd-Warshall: all-pairs distances with diagonal cycle check
//
// ✨ Why choose waypath?
//
//   - Minimal API – build a graph once, hand it to exactly one engine,
//     read back a result table of (distance, predecessor) per vertex
//   - Honest results – unreachable vertices and negative cycles are values
//     (+Inf, core.None, NegCycle), never silent wrong numbers
//   - Immutable inputs – graphs are read-only after construction and safe
//     to share across concurrent invocations; every engine allocates its
//     own scratch state
//   - Pure Go – no cgo, a single test-only dependency
//
// The library is organized as one package per algorithm family:
//
//	core/          — Edge, List (adjacency list), Matrix (flat dense) containers
//	ixheap/        — indexed binary min-heap keyed by vertex index
//	dijkstra/      — label-setting single-source engine over core.List
//	markov/        — log-domain reparameterization for transition probabilities
//	bellmanford/   — global relaxation engine over core.Matrix
//	floydwarshall/ — all-pairs dynamic-programming engine over core.Matrix
//
// Quick sketch:
//
//	edges := []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}
//	g, _ := core.NewList(3, edges)
//	res, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	path, _ := res.PathTo(2) // [0 1 2]
//
// Dive into each package's doc.go for contracts, complexity and error sets.
package waypath
