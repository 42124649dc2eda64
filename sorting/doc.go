// Package sorting implements the classic comparison sorts over an in-memory
// slice of ordered elements.
//
// 🚀 What's inside?
//
//	Insertion  - in place, stable, O(n²)
//	Bubble     - in place, O(n²)
//	Selection  - in place, O(n²)
//	Quick      - in place, O(n log n) average, O(n²) worst (first-element pivot)
//	Merge      - returns a new slice, stable, O(n log n)
//	Heap       - returns a new slice, min-heap extraction, O(n log n)
//	Shell      - in place, Ciura gaps [701 301 132 57 23 10 4 1]
//	Bogo       - shuffle until sorted (small inputs only)
//	BogoBogo   - grow a sorted prefix by reshuffling (small inputs only)
//
// ✨ Contracts:
//   - Every sort yields a non-decreasing permutation of its input.
//   - Only Insertion and Merge are stable.
//   - Sorting an already sorted slice leaves it element-wise unchanged.
//   - A failing call returns an error before reordering anything.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsort/sorting"
//
//	xs := []int{5, 3, 4, 1, 2}
//	sorting.Insertion(xs)             // xs == [1 2 3 4 5]
//	ys := sorting.Merge([]int{3, 1})  // ys == [1 3], input untouched
//	err := sorting.QuickRange(xs, 1, 3)
//
// Catalog() lists every algorithm with its properties, for callers that
// pick an algorithm by name.
package sorting
