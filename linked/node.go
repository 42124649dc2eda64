package linked

// Node is one link of a singly linked chain.
// The chain is acyclic: successors are only ever attached as fresh nodes at
// the tail, never as existing ones.
type Node[T comparable] struct {
	Data T
	next *Node[T]
}

// NewNode returns a chain of one node holding data.
func NewNode[T comparable](data T) *Node[T] {
	return &Node[T]{Data: data}
}

// Next returns the successor, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Insert appends a new node holding value at the tail of the chain.
// Complexity: O(n).
func (n *Node[T]) Insert(value T) {
	cur := n
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = &Node[T]{Data: value}
}

// Remove unlinks the first successor whose Data equals value and reports
// whether one was found. The receiver itself is never removed; containers
// handle their head themselves.
// Complexity: O(n).
func (n *Node[T]) Remove(value T) bool {
	prev, scout := n, n.next
	for scout != nil && scout.Data != value {
		prev, scout = scout, scout.next
	}
	if scout == nil {
		return false
	}
	prev.next = scout.next
	scout.next = nil

	return true
}

// Find reports whether value is held by the receiver or any successor.
// Complexity: O(n).
func (n *Node[T]) Find(value T) bool {
	for cur := n; cur != nil; cur = cur.next {
		if cur.Data == value {
			return true
		}
	}

	return false
}

// Len counts the nodes from the receiver to the end of the chain.
func (n *Node[T]) Len() int {
	c := 0
	for cur := n; cur != nil; cur = cur.next {
		c++
	}

	return c
}

// values collects Data from head to tail.
func values[T comparable](head *Node[T], size int) []T {
	out := make([]T, 0, size)
	for cur := head; cur != nil; cur = cur.next {
		out = append(out, cur.Data)
	}

	return out
}
