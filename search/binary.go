package search

import "cmp"

// Binary returns an index i with seq[i] == value.
// Precondition: seq is sorted ascending; otherwise the result is unspecified
// (it may miss a present value, but never returns a wrong index).
//
// Bounds are kept as the half-open window [start, end):
//
//	middle = (start+end)/2
//	seq[middle] == value → middle
//	seq[middle] <  value → start = middle+1
//	otherwise            → end = middle
//
// The loop stops with ErrNotFound once start >= end.
//
// Complexity: O(log n) time, O(1) memory.
func Binary[T cmp.Ordered](seq []T, value T) (int, error) {
	start, end := 0, len(seq)
	for start < end {
		middle := (start + end) / 2
		switch {
		case seq[middle] == value:
			return middle, nil
		case seq[middle] < value:
			start = middle + 1
		default:
			end = middle
		}
	}

	return -1, ErrNotFound
}

// BinaryRecursive has the same contract as Binary, expressed as recursion
// over [lo, hi) bounds of the shared slice.
//
// Complexity: O(log n) time, O(log n) stack depth.
func BinaryRecursive[T cmp.Ordered](seq []T, value T) (int, error) {
	return binaryWithin(seq, value, 0, len(seq))
}

func binaryWithin[T cmp.Ordered](seq []T, value T, lo, hi int) (int, error) {
	if lo >= hi {
		return -1, ErrNotFound
	}
	middle := (lo + hi) / 2
	if seq[middle] == value {
		return middle, nil
	}
	if seq[middle] < value {
		return binaryWithin(seq, value, middle+1, hi)
	}

	return binaryWithin(seq, value, lo, middle)
}
