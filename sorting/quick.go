package sorting

import "cmp"

// Quick sorts the whole of seq in place. Inputs shorter than two elements
// are left alone. Not stable.
//
// The pivot is the first element of each subrange unless
// WithPivot(PivotMedianOfThree) is given. With the first-element pivot an
// already sorted or reverse-sorted input degrades to O(n²) time and O(n)
// recursion depth.
func Quick[T cmp.Ordered](seq []T, opts ...QuickOption) {
	if len(seq) < 2 {
		return
	}
	o := applyQuickOptions(opts)
	quick(seq, 0, len(seq)-1, o.Pivot)
}

// QuickRange sorts seq[start..end] (inclusive) in place.
// It returns ErrInvalidRange, without touching seq, when start < 0,
// end >= len(seq) or start > end.
func QuickRange[T cmp.Ordered](seq []T, start, end int, opts ...QuickOption) error {
	if start < 0 || end >= len(seq) || start > end {
		return ErrInvalidRange
	}
	o := applyQuickOptions(opts)
	quick(seq, start, end, o.Pivot)

	return nil
}

func applyQuickOptions(opts []QuickOption) QuickOptions {
	o := QuickOptions{Pivot: PivotFirst}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func quick[T cmp.Ordered](seq []T, start, end int, pivot Pivot) {
	if end-start < 1 {
		return
	}
	if pivot == PivotMedianOfThree {
		medianToFront(seq, start, end)
	}
	p := partition(seq, start, end)
	quick(seq, start, p-1, pivot)
	quick(seq, p+1, end, pivot)
}

// partition arranges seq[start..end] around pivot = seq[start] and returns
// the pivot's final index.
//
// Layout while running:
//
//	[start .. i-1 | i = pivot | i+1 .. j unseen | j+1 .. end]
//	   < pivot                                     >= pivot
//
// The element after the pivot is either sent to j (and j shrinks) or swapped
// with the pivot (and i grows). The loop ends with i == j.
func partition[T cmp.Ordered](seq []T, start, end int) int {
	i, j := start, end
	pivot := seq[start]
	for i < j {
		if seq[i+1] >= pivot {
			swap(seq, i+1, j)
			j--
		} else {
			swap(seq, i+1, i)
			i++
		}
	}

	return i
}

// medianToFront moves the median of seq[start], seq[mid], seq[end] to start.
func medianToFront[T cmp.Ordered](seq []T, start, end int) {
	mid := start + (end-start)/2
	a, b, c := seq[start], seq[mid], seq[end]
	switch {
	case (a <= b && b <= c) || (c <= b && b <= a):
		swap(seq, start, mid)
	case (a <= c && c <= b) || (b <= c && c <= a):
		swap(seq, start, end)
	}
}
