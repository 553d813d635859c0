package frontier

// Queue is a FIFO container backed by a slice with a moving head.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns a queue holding items, front first.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{items: make([]T, 0, len(items))}
	q.items = append(q.items, items...)

	return q
}

// Push appends item to the back.
func (q *Queue[T]) Push(item T) { q.items = append(q.items, item) }

// Pop removes and returns the front item. ok is false when the queue is empty.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if q.head == len(q.items) {
		return item, false
	}
	var zero T
	item = q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// compact once the dead prefix dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if q.head == len(q.items) {
		return item, false
	}

	return q.items[q.head], true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Stack is a LIFO container.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack holding items; the last one is on top.
func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(items))}
	s.items = append(s.items, items...)

	return s
}

// Push puts item on top.
func (s *Stack[T]) Push(item T) { s.items = append(s.items, item) }

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (item T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return item, false
	}
	var zero T
	item = s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int { return len(s.items) }
