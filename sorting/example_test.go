package sorting_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlsort/sorting"
)

// ExampleInsertion sorts in place.
func ExampleInsertion() {
	xs := []int{5, 3, 4, 1, 2}
	sorting.Insertion(xs)
	fmt.Println(xs)
	// Output:
	// [1 2 3 4 5]
}

// ExampleMerge returns a sorted copy and keeps the input.
func ExampleMerge() {
	in := []string{"kiwi", "apple", "fig"}
	out := sorting.Merge(in)
	fmt.Println(out, in)
	// Output:
	// [apple fig kiwi] [kiwi apple fig]
}

// ExampleQuickRange sorts only a window of the slice and rejects bad bounds.
func ExampleQuickRange() {
	xs := []int{9, 4, 2, 3, 0}
	_ = sorting.QuickRange(xs, 1, 3)
	fmt.Println(xs)

	err := sorting.QuickRange(xs, 3, 1)
	fmt.Println(errors.Is(err, sorting.ErrInvalidRange))
	// Output:
	// [9 2 3 4 0]
	// true
}

// ExampleHeap extracts the minimum repeatedly.
func ExampleHeap() {
	fmt.Println(sorting.Heap([]int{4, 1, 3, 2}))
	// Output:
	// [1 2 3 4]
}

// ExampleBogo shows the length gate on the joke sort.
func ExampleBogo() {
	err := sorting.Bogo(make([]int, 20))
	fmt.Println(errors.Is(err, sorting.ErrInputTooLarge))
	// Output:
	// true
}
