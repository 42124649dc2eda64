package sorting

// Partition exposes the quicksort partition step to external tests.
func Partition(seq []int, start, end int) int { return partition(seq, start, end) }

// HeapifyInts builds the phase-1 heap and returns its backing array.
func HeapifyInts(seq []int) []int { return *heapify(seq) }
