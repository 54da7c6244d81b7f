package frontier

// Queue is a FIFO container. The zero value is ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) { q.items = append(q.items, v) }

// Dequeue removes and returns the oldest element. ok is false when the
// queue is empty.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.head >= len(q.items) {
		return v, false
	}
	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// compact once the consumed prefix dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, true
}

// Len returns the number of pending elements.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds nothing.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// Stack is a LIFO container. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element. ok is false when the stack
// is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return v, true
}

// Len returns the number of pending elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds nothing.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
