// Package pq provides a generic binary min-heap ordered by a caller-supplied
// comparator.
//
// The heap is the priority queue behind the shortest-path rounds of the
// min-cost flow engine, but it is self-contained and works for any element type.
//
// Ordering:
//
//	less(a, b) must be a strict weak ordering. Pop always returns an element x
//	such that no remaining y satisfies less(y, x). Elements that compare equal
//	leave the heap in an order fixed by their insertion sequence, so two runs
//	over the same input produce the same output.
//
// Complexity:
//
//   - Push: O(log k) sift-up, k = current size.
//   - Pop:  O(log k) sift-down.
//   - Peek, Len, IsEmpty: O(1).
//
// Example:
//
//	h := pq.New(func(a, b int) bool { return a < b })
//	h.Push(3)
//	h.Push(1)
//	x, _ := h.Pop() // x == 1
package pq
