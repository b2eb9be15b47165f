package ixheap

// Test-only bridge exposing the private invariant checker to the
// package tests.

// CheckInvariant exposes Heap.check for tests.
func (h *Heap) CheckInvariant() error { return h.check() }
