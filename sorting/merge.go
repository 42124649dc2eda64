package sorting

import (
	"cmp"
	"slices"
)

// Merge returns a new, sorted copy of seq; seq is not modified. Stable: on
// ties the element from the left half goes first.
//
// The recursion splits [lo, hi) at (lo+hi)/2 over one working buffer and
// merges through a single scratch buffer, so no level allocates.
//
// Complexity: O(n log n) time, O(n) extra memory.
func Merge[T cmp.Ordered](seq []T) []T {
	out := slices.Clone(seq)
	if len(out) <= 1 {
		return out
	}
	scratch := make([]T, len(out))
	mergeSort(out, scratch, 0, len(out))

	return out
}

func mergeSort[T cmp.Ordered](buf, scratch []T, lo, hi int) {
	if hi-lo <= 1 {
		return
	}
	middle := (lo + hi) / 2
	mergeSort(buf, scratch, lo, middle)
	mergeSort(buf, scratch, middle, hi)
	merge(buf, scratch, lo, middle, hi)
}

// merge combines the sorted runs buf[lo:middle] and buf[middle:hi] into
// buf[lo:hi] by repeatedly taking the smaller front element; the exhausted
// side's partner tail is appended verbatim.
func merge[T cmp.Ordered](buf, scratch []T, lo, middle, hi int) {
	l, r, k := lo, middle, lo
	for l < middle && r < hi {
		if buf[r] < buf[l] {
			scratch[k] = buf[r]
			r++
		} else {
			scratch[k] = buf[l]
			l++
		}
		k++
	}
	k += copy(scratch[k:], buf[l:middle])
	copy(scratch[k:], buf[r:hi])
	copy(buf[lo:hi], scratch[lo:hi])
}
