// Package lvlsort is a small in-memory playground of classic searching and
// sorting algorithms plus the singly linked nodes they are often taught with.
//
// 🚀 What is lvlsort?
//
//	A generic, zero-surprise teaching library that brings together:
//		• Searching: linear, binary (iterative and recursive), bogo search
//		• O(n²) sorts: insertion, bubble, selection
//		• Divide and conquer: quicksort, merge sort
//		• Heap sort over an array-backed min-heap
//		• Shell sort with Ciura's gaps
//		• The joke sorts: bogo and bogobogo, gated to tiny inputs
//		• Linked nodes, a composition-based list, and a LIFO stack
//
// ✨ Why choose lvlsort?
//
//   - Readable: each algorithm follows its textbook definition step by step
//   - Generic: works on any cmp.Ordered element type
//   - Honest contracts: sentinel errors, no panics on caller input
//   - Pure Go: no cgo in the library packages
//
// Packages:
//
//	search/  - Linear, LinearRecursive, Binary, BinaryRecursive, Bogo
//	sorting/ - Insertion, Bubble, Selection, Quick, Merge, Heap, Shell, Bogo, BogoBogo
//	linked/  - Node, List, Stack
//	cmd/lvlsort - command-line front end (sort, search, bench, reverse)
//
// Quick example:
//
//	xs := []int{5, 3, 4, 1, 2}
//	sorting.Insertion(xs)            // [1 2 3 4 5]
//	i, _ := search.Binary(xs, 4)     // 3
//
//	go install github.com/katalvlaran/lvlsort/cmd/lvlsort@latest
package lvlsort
