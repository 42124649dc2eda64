package sorting

import "cmp"

// Algorithm describes one sort of this package behind a uniform signature.
//
// Run sorts seq and returns the sorted result. For in-place algorithms the
// result aliases seq; Merge and Heap return a fresh slice and leave seq as is.
type Algorithm[T cmp.Ordered] struct {
	Name       string
	Stable     bool
	InPlace    bool
	Complexity string
	Run        func(seq []T) ([]T, error)
}

// inPlace adapts an in-place sort to the Run signature.
func inPlace[T cmp.Ordered](fn func([]T)) func([]T) ([]T, error) {
	return func(seq []T) ([]T, error) {
		fn(seq)
		return seq, nil
	}
}

// Catalog returns every algorithm in a fixed order. The bogo sorts use
// their default gates.
func Catalog[T cmp.Ordered]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "insertion", Stable: true, InPlace: true, Complexity: "O(n²)", Run: inPlace(Insertion[T])},
		{Name: "bubble", Stable: true, InPlace: true, Complexity: "O(n²)", Run: inPlace(Bubble[T])},
		{Name: "selection", InPlace: true, Complexity: "O(n²)", Run: inPlace(Selection[T])},
		{Name: "quick", InPlace: true, Complexity: "O(n log n) avg, O(n²) worst", Run: inPlace(func(s []T) { Quick(s) })},
		{Name: "quick-median3", InPlace: true, Complexity: "O(n log n) avg", Run: inPlace(func(s []T) { Quick(s, WithPivot(PivotMedianOfThree)) })},
		{Name: "merge", Stable: true, Complexity: "O(n log n)", Run: func(s []T) ([]T, error) { return Merge(s), nil }},
		{Name: "heap", Complexity: "O(n log n)", Run: func(s []T) ([]T, error) { return Heap(s), nil }},
		{Name: "shell", InPlace: true, Complexity: "O(n^1.3) typical", Run: inPlace(Shell[T])},
		{Name: "bogo", InPlace: true, Complexity: "O(n·n!) expected", Run: func(s []T) ([]T, error) { return s, Bogo(s) }},
		{Name: "bogobogo", InPlace: true, Complexity: "super-exponential", Run: func(s []T) ([]T, error) { return s, BogoBogo(s) }},
	}
}

// Lookup returns the catalog entry called name, or ErrUnknownAlgorithm.
func Lookup[T cmp.Ordered](name string) (Algorithm[T], error) {
	for _, a := range Catalog[T]() {
		if a.Name == name {
			return a, nil
		}
	}

	return Algorithm[T]{}, ErrUnknownAlgorithm
}

// Names returns the catalog names in catalog order.
func Names() []string {
	cat := Catalog[int]()
	out := make([]string, len(cat))
	for i, a := range cat {
		out[i] = a.Name
	}

	return out
}
