package sorting

import "cmp"

// ciuraGaps is Marcin Ciura's gap sequence; it ends in 1 so the last pass is
// a plain insertion sort.
var ciuraGaps = [...]int{701, 301, 132, 57, 23, 10, 4, 1}

// Gaps returns a copy of the gap sequence Shell uses, largest first.
func Gaps() []int {
	out := make([]int, len(ciuraGaps))
	copy(out, ciuraGaps[:])

	return out
}

// Shell sorts seq in place with a gapped insertion sort per gap. Gaps not
// smaller than len(seq) do nothing.
//
// Complexity: sub-quadratic in practice; no tight bound is known for these gaps.
func Shell[T cmp.Ordered](seq []T) {
	for _, gap := range ciuraGaps {
		for i := gap; i < len(seq); i++ {
			temp := seq[i]
			j := i
			for ; j >= gap && seq[j-gap] > temp; j -= gap {
				seq[j] = seq[j-gap]
			}
			seq[j] = temp
		}
	}
}
