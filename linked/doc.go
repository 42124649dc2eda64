// Package linked provides singly linked nodes and the containers built on
// them.
//
//	Node[T]  - one link: Data plus an owned successor chain; Insert/Remove/Find
//	List[T]  - holds an optional head node; no sentinel "header" node
//	Stack[T] - LIFO over the head node: Push/Pop/Peek/Clear/Find
//
// Ownership: each node owns the rest of the chain after it, and containers
// own their head. Removing a node re-attaches its tail to the predecessor,
// so only the removed node is dropped.
//
// None of the types are safe for concurrent use; guard them externally when
// sharing across goroutines.
package linked
