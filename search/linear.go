package search

import "cmp"

// Linear returns the first index i with seq[i] == value.
//
// Steps:
//  1. Walk i = 0..len(seq)-1.
//  2. Return i on the first equal element.
//  3. Otherwise report ErrNotFound.
//
// Complexity: O(n) time, O(1) memory.
func Linear[T cmp.Ordered](seq []T, value T) (int, error) {
	for i := 0; i < len(seq); i++ {
		if seq[i] == value {
			return i, nil
		}
	}

	return -1, ErrNotFound
}

// LinearRecursive has the same contract as Linear. Each call inspects one
// index and recurses on the next one over the same backing slice.
//
// Complexity: O(n) time, O(n) stack depth.
func LinearRecursive[T cmp.Ordered](seq []T, value T) (int, error) {
	return linearFrom(seq, value, 0)
}

func linearFrom[T cmp.Ordered](seq []T, value T, i int) (int, error) {
	if i >= len(seq) {
		return -1, ErrNotFound
	}
	if seq[i] == value {
		return i, nil
	}

	return linearFrom(seq, value, i+1)
}
