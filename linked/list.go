package linked

// List is a singly linked list that holds an optional head node.
// The zero value is an empty list.
type List[T comparable] struct {
	head *Node[T]
	size int
}

// NewList returns a list holding values in order.
func NewList[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Head returns the first node, or nil when the list is empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// PushFront prepends value. O(1).
func (l *List[T]) PushFront(value T) {
	l.head = &Node[T]{Data: value, next: l.head}
	l.size++
}

// PushBack appends value. O(n).
func (l *List[T]) PushBack(value T) {
	if l.head == nil {
		l.head = NewNode(value)
	} else {
		l.head.Insert(value)
	}
	l.size++
}

// Remove deletes the first element equal to value, head included, and
// reports whether one was removed. O(n).
func (l *List[T]) Remove(value T) bool {
	if l.head == nil {
		return false
	}
	if l.head.Data == value {
		old := l.head
		l.head = old.next
		old.next = nil
		l.size--
		return true
	}
	if l.head.Remove(value) {
		l.size--
		return true
	}

	return false
}

// Find reports whether value is in the list. O(n).
func (l *List[T]) Find(value T) bool {
	return l.head != nil && l.head.Find(value)
}

// Values returns the elements from head to tail.
func (l *List[T]) Values() []T {
	return values(l.head, l.size)
}
