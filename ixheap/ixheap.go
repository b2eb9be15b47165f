package ixheap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heap construction and access.
var (
	// ErrBadCapacity indicates a non-positive capacity passed to New.
	ErrBadCapacity = errors.New("ixheap: capacity must be positive")

	// ErrVertexOutOfRange indicates a vertex index outside [0, capacity).
	ErrVertexOutOfRange = errors.New("ixheap: vertex index out of range")

	// ErrEmptyHeap indicates a Peek or Pop on an empty heap.
	ErrEmptyHeap = errors.New("ixheap: heap is empty")
)

// Item is one priority-queue entry: a vertex, its current key (tentative
// distance or score), and the predecessor that produced that key.
type Item struct {
	// Vertex is the vertex index this entry belongs to.
	Vertex int

	// Key orders the heap; smaller keys are extracted first.
	Key float64

	// Prev is the predecessor vertex recorded alongside the key.
	Prev int
}

// Heap is an indexed binary min-heap over vertices [0, capacity) with at
// most one live entry per vertex. The zero value is not usable; create
// heaps with New.
type Heap struct {
	items []Item // dense heap array, items[0] is the minimum
	slot  []int  // slot[v] = index of v in items, or -1 when absent
}

// New returns an empty heap sized for capacity distinct vertices.
// Returns ErrBadCapacity if capacity ≤ 0.
//
// Complexity: O(capacity).
func New(capacity int) (*Heap, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("New: capacity=%d: %w", capacity, ErrBadCapacity)
	}

	slot := make([]int, capacity)
	for i := range slot {
		slot[i] = -1 // no vertex present yet
	}

	return &Heap{
		items: make([]Item, 0, capacity),
		slot:  slot,
	}, nil
}

// Len returns the number of live entries.
func (h *Heap) Len() int { return len(h.items) }

// Empty reports whether the heap holds no entries.
func (h *Heap) Empty() bool { return len(h.items) == 0 }

// Peek returns the minimum-key entry without removing it.
// Returns ErrEmptyHeap on an empty heap.
//
// Complexity: O(1).
func (h *Heap) Peek() (Item, error) {
	if len(h.items) == 0 {
		return Item{}, fmt.Errorf("Peek: %w", ErrEmptyHeap)
	}

	return h.items[0], nil
}

// Add inserts it, or decreases the key of an already-present vertex.
//
// Behavior:
//   - Vertex absent: append the entry and sift up.
//   - Vertex present with a strictly larger key: overwrite the entry
//     (key and predecessor together) and sift up.
//   - Vertex present with a smaller or equal key: no-op.
//
// Returns ErrVertexOutOfRange if it.Vertex is outside [0, capacity);
// vertices are range-checked here precisely so the heap can never exceed
// its declared capacity.
//
// Complexity: O(log n).
func (h *Heap) Add(it Item) error {
	// 1) Bounds check against the fixed vertex universe.
	if it.Vertex < 0 || it.Vertex >= len(h.slot) {
		return fmt.Errorf("Add: vertex %d: %w", it.Vertex, ErrVertexOutOfRange)
	}

	// 2) Decrease-key path: the vertex already has a live entry.
	if i := h.slot[it.Vertex]; i != -1 {
		if it.Key < h.items[i].Key {
			h.items[i] = it
			h.siftUp(i)
		}
		// A larger or equal key never displaces the live entry.

		return nil
	}

	// 3) Insert path: append at the end and restore the heap invariant.
	i := len(h.items)
	h.items = append(h.items, it)
	h.slot[it.Vertex] = i
	h.siftUp(i)

	return nil
}

// Pop removes and returns the minimum-key entry: the last element moves
// to the root and sifts down, choosing the smaller child and preferring
// the left child on key ties.
// Returns ErrEmptyHeap on an empty heap.
//
// Complexity: O(log n).
func (h *Heap) Pop() (Item, error) {
	if len(h.items) == 0 {
		return Item{}, fmt.Errorf("Pop: %w", ErrEmptyHeap)
	}

	min := h.items[0]
	h.slot[min.Vertex] = -1

	last := len(h.items) - 1
	if last > 0 {
		h.items[0] = h.items[last]
		h.slot[h.items[0].Vertex] = 0
	}
	h.items = h.items[:last]
	h.siftDown(0)

	return min, nil
}

// siftUp moves the entry at slot i toward the root until its parent's
// key is no larger.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].Key <= h.items[i].Key {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the entry at slot i toward the leaves, swapping with
// the smaller child until both children's keys are no smaller. The right
// child is chosen only when strictly smaller than the left, so ties
// resolve toward the left child.
func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		left := i*2 + 1
		right := i*2 + 2
		smallest := i
		if left < n && h.items[left].Key < h.items[smallest].Key {
			smallest = left
		}
		if right < n && h.items[right].Key < h.items[smallest].Key {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two heap slots and keeps the vertex→slot index in sync.
// Both indices must be valid live slots.
func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.slot[h.items[i].Vertex] = i
	h.slot[h.items[j].Vertex] = j
}

// check verifies the structural invariants: every non-root entry's key is
// no smaller than its parent's, and the vertex→slot index matches the
// heap array exactly. Used by white-box tests.
func (h *Heap) check() error {
	for i := 1; i < len(h.items); i++ {
		parent := (i - 1) / 2
		if h.items[parent].Key > h.items[i].Key {
			return fmt.Errorf("ixheap: heap property violated at slot %d (parent key %v > child key %v)",
				i, h.items[parent].Key, h.items[i].Key)
		}
	}
	live := 0
	for v, s := range h.slot {
		if s == -1 {
			continue
		}
		live++
		if s < 0 || s >= len(h.items) || h.items[s].Vertex != v {
			return fmt.Errorf("ixheap: slot index inconsistent for vertex %d (slot %d)", v, s)
		}
	}
	if live != len(h.items) {
		return fmt.Errorf("ixheap: %d live slots for %d items", live, len(h.items))
	}

	return nil
}
