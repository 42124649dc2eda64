package sorting

import "cmp"

// Insertion sorts seq in place, stable.
//
// For each index a (left to right) the element is pushed down by adjacent
// swaps while its left neighbour is strictly greater. After step a,
// seq[0..a] is sorted.
//
// Complexity: O(n²) worst case, O(n) on sorted input.
func Insertion[T cmp.Ordered](seq []T) {
	for a := 0; a < len(seq); a++ {
		pushDown(seq, a)
	}
}

// pushDown moves seq[a] into its sorted position inside seq[0..a].
// Precondition: seq[0..a-1] is sorted.
func pushDown[T cmp.Ordered](seq []T, a int) {
	for i := a; i > 0 && seq[i-1] > seq[i]; i-- {
		swap(seq, i-1, i)
	}
}

// Bubble sorts seq in place.
//
// The unsorted boundary end shrinks from len-1 down to 1; each pass bubbles
// the maximum of seq[0..end] onto end.
//
// Complexity: O(n²).
func Bubble[T cmp.Ordered](seq []T) {
	for end := len(seq) - 1; end > 0; end-- {
		bubbleUp(seq, end)
	}
}

// bubbleUp runs one left-to-right pass over seq[0..end].
func bubbleUp[T cmp.Ordered](seq []T, end int) {
	for i := 0; i < end; i++ {
		if seq[i+1] < seq[i] {
			swap(seq, i+1, i)
		}
	}
}

// Selection sorts seq in place.
//
// For each start, the minimum of seq[start:] (first occurrence on ties) is
// swapped into start when strictly smaller than seq[start].
//
// Complexity: O(n²) comparisons, at most n-1 swaps.
func Selection[T cmp.Ordered](seq []T) {
	for start := 0; start < len(seq); start++ {
		m := findMin(seq, start)
		if seq[m] < seq[start] {
			swap(seq, start, m)
		}
	}
}

// findMin returns the index of the first minimum within seq[from:].
func findMin[T cmp.Ordered](seq []T, from int) int {
	idx := from
	for i := from + 1; i < len(seq); i++ {
		if seq[i] < seq[idx] {
			idx = i
		}
	}

	return idx
}
