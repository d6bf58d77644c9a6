package pq

// Heap is a binary min-heap over T. The zero value is not usable; build one with New.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty heap ordered by less. An optional capHint pre-sizes
// the backing array.
func New[T any](less func(a, b T) bool, capHint ...int) *Heap[T] {
	if less == nil {
		panic("pq: nil less function")
	}
	c := 0
	if len(capHint) > 0 && capHint[0] > 0 {
		c = capHint[0]
	}

	return &Heap[T]{
		items: make([]T, 0, c),
		less:  less,
	}
}

// Len returns the number of stored items.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Push inserts x.
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the minimum item. ok is false when the heap is empty.
func (h *Heap[T]) Pop() (x T, ok bool) {
	n := len(h.items)
	if n == 0 {
		return x, false
	}
	x = h.items[0]
	last := h.items[n-1]
	var zero T
	h.items[n-1] = zero // drop the reference for the GC
	h.items = h.items[:n-1]
	if n > 1 {
		h.items[0] = last
		h.down(0)
	}

	return x, true
}

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() (x T, ok bool) {
	if len(h.items) == 0 {
		return x, false
	}

	return h.items[0], true
}

// Reset empties the heap and keeps the backing array for reuse.
func (h *Heap[T]) Reset() {
	var zero T
	for i := range h.items {
		h.items[i] = zero
	}
	h.items = h.items[:0]
}

// up moves the item at index i toward the root until its parent is not greater.
func (h *Heap[T]) up(i int) {
	item := h.items[i]
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(item, h.items[parent]) {
			break
		}
		h.items[i] = h.items[parent]
		i = parent
	}
	h.items[i] = item
}

// down moves the item at index i toward the leaves until both children are not smaller.
func (h *Heap[T]) down(i int) {
	n := len(h.items)
	item := h.items[i]
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.less(h.items[right], h.items[child]) {
			child = right
		}
		if !h.less(h.items[child], item) {
			break
		}
		h.items[i] = h.items[child]
		i = child
	}
	h.items[i] = item
}

// valid reports whether the heap-order invariant holds. Used by tests.
func (h *Heap[T]) valid() bool {
	for i := 1; i < len(h.items); i++ {
		if h.less(h.items[i], h.items[(i-1)/2]) {
			return false
		}
	}

	return true
}
