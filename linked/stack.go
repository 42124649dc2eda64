package linked

// Stack is a LIFO stack whose top is always the head node.
// The zero value is an empty stack.
type Stack[T comparable] struct {
	head *Node[T]
	size int
}

// NewStack returns an empty stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top. O(1).
func (s *Stack[T]) Push(value T) {
	s.head = &Node[T]{Data: value, next: s.head}
	s.size++
}

// Pop removes and returns the top value, or ErrEmptyStack. O(1).
func (s *Stack[T]) Pop() (T, error) {
	if s.head == nil {
		var zero T
		return zero, ErrEmptyStack
	}
	old := s.head
	s.head = old.next
	old.next = nil
	s.size--

	return old.Data, nil
}

// Peek returns the top value without removing it, or ErrEmptyStack. O(1).
func (s *Stack[T]) Peek() (T, error) {
	if s.head == nil {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.head.Data, nil
}

// Clear pops until the stack is empty. O(n).
func (s *Stack[T]) Clear() {
	for s.head != nil {
		_, _ = s.Pop()
	}
}

// Find reports whether value is anywhere in the stack. O(n).
func (s *Stack[T]) Find(value T) bool {
	return s.head != nil && s.head.Find(value)
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.size }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return s.head == nil }

// Values returns the elements from top to bottom.
func (s *Stack[T]) Values() []T {
	return values(s.head, s.size)
}
