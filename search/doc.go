// Package search locates a value inside an in-memory sequence of ordered
// elements.
//
// 🚀 What's inside?
//
//	Linear           - O(n) forward scan, iterative
//	LinearRecursive  - same contract, recursion carries an index
//	Binary           - O(log n) halving over a sorted sequence, iterative
//	BinaryRecursive  - same contract, recursion over [lo, hi) bounds
//	Bogo             - random probing until found or the time budget is spent
//
// All functions are read-only: the sequence is never mutated.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsort/search"
//
//	idx, err := search.Binary([]int{1, 3, 5, 7}, 5) // idx == 2
//	if errors.Is(err, search.ErrNotFound) {
//	  // value is absent
//	}
//
// Errors:
//   - ErrNotFound - the value is not in the sequence (or the sequence is empty).
//   - ErrTimeout  - Bogo spent its whole time budget without a hit.
//
// Bogo is an anti-pattern baseline. It is here to be measured against, not used.
package search
