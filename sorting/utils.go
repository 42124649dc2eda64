package sorting

import "cmp"

// IsSorted reports whether seq is non-decreasing.
// Complexity: O(n).
func IsSorted[T cmp.Ordered](seq []T) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return false
		}
	}

	return true
}

// swap exchanges seq[a] and seq[b].
func swap[T any](seq []T, a, b int) {
	seq[a], seq[b] = seq[b], seq[a]
}
