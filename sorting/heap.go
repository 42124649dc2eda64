package sorting

import "cmp"

// Heap returns a new sorted slice built by min-heap extraction; seq is not
// modified. Not stable.
//
// Phase 1 pushes every element into a growing min-heap (sift-up).
// Phase 2 repeatedly emits the root. When exactly one element is left it is
// emitted directly; otherwise the last element moves to the root and sifts
// down.
//
// Complexity: O(n log n) time, O(n) extra memory.
func Heap[T cmp.Ordered](seq []T) []T {
	h := heapify(seq)
	out := make([]T, 0, len(seq))
	for h.Len() > 0 {
		out = append(out, h.popMin())
	}

	return out
}

// minHeap is an array-backed binary min-heap.
// Invariant: for every i > 0, h[(i-1)/2] <= h[i].
type minHeap[T cmp.Ordered] []T

// heapify builds a min-heap by pushing the elements of seq one at a time.
func heapify[T cmp.Ordered](seq []T) *minHeap[T] {
	h := make(minHeap[T], 0, len(seq))
	for _, v := range seq {
		h.push(v)
	}

	return &h
}

// Len returns the number of elements in the heap.
func (h *minHeap[T]) Len() int { return len(*h) }

// push appends v and sifts it up until its parent is not greater.
func (h *minHeap[T]) push(v T) {
	*h = append(*h, v)
	a := *h
	child := len(a) - 1
	for child > 0 {
		parent := (child - 1) / 2
		if !(a[child] < a[parent]) {
			break
		}
		swap(a, child, parent)
		child = parent
	}
}

// popMin removes and returns the root. Precondition: Len() > 0.
func (h *minHeap[T]) popMin() T {
	a := *h
	root := a[0]
	n := len(a)
	switch n {
	case 1:
		*h = a[:0]
	case 2:
		// single survivor: no sift needed
		a[0] = a[1]
		*h = a[:1]
	default:
		a[0] = a[n-1]
		*h = a[:n-1]
		h.siftDown(0)
	}

	return root
}

// siftDown pushes a[r] down, swapping with the smaller child while the
// parent is greater. A node without a left child is a leaf.
func (h *minHeap[T]) siftDown(r int) {
	a := *h
	n := len(a)
	for {
		left, right := 2*r+1, 2*r+2
		if left >= n {
			return
		}
		smallest := left
		if right < n && a[right] < a[left] {
			smallest = right
		}
		if a[r] <= a[smallest] {
			return
		}
		swap(a, r, smallest)
		r = smallest
	}
}
