// Package ixheap provides an indexed binary min-heap keyed by vertex
// index, the priority queue behind the waypath single-source engines.
//
// Overview:
//
//   - The heap orders Item{Vertex, Key, Prev} triples by ascending Key and
//     holds at most one live entry per vertex at any time.
//   - An auxiliary vertex→slot index array tracks where each vertex sits
//     inside the heap array, so Add can locate an existing entry in O(1)
//     instead of a linear scan. Every swap keeps the index consistent.
//   - Add implements decrease-key implicitly: adding a vertex already in
//     the heap overwrites its entry only when the new key is strictly
//     smaller; a larger or equal key is a no-op. Stale, replaced entries
//     therefore never coexist — there is no lazy deletion.
//
// Capacity:
//
//   - A heap is created for a fixed number of distinct vertices, normally
//     the graph's vertex count. Since Add rejects out-of-range vertices
//     and stores at most one entry per vertex, the heap can never outgrow
//     its capacity.
//
// Complexity:
//
//   - Add:  O(log n) (sift up after insert or decrease-key)
//   - Pop:  O(log n) (sift down after root removal)
//   - Peek, Len, Empty: O(1)
//   - Space: O(capacity)
//
// Errors (sentinel):
//
//   - ErrBadCapacity      if New is called with capacity ≤ 0.
//   - ErrVertexOutOfRange if Add is given a vertex outside [0, capacity).
//   - ErrEmptyHeap        if Peek or Pop is called on an empty heap.
package ixheap
