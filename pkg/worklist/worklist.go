// Package worklist provides the frontier containers that drive stepped traversals.
//
// A [Worklist] is a single interface with two disciplines: [NewStack] removes
// the most recently added item (depth-first order) and [NewQueue] removes the
// oldest (breadth-first order). Callers pick the discipline at construction
// time and never branch on it afterwards.
package worklist

// Discipline names the removal order of a worklist.
type Discipline int

const (
	// LIFO removes the most recently added item.
	LIFO Discipline = iota
	// FIFO removes the least recently added item.
	FIFO
)

// String returns "lifo" or "fifo".
func (d Discipline) String() string {
	switch d {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// Worklist is an ordered container of pending items.
type Worklist[T any] interface {
	// Add appends an item to the worklist.
	Add(item T)
	// Remove takes the next item according to the discipline.
	// It reports false when the worklist is empty.
	Remove() (T, bool)
	// Len returns the number of pending items.
	Len() int
	// Discipline reports the removal order.
	Discipline() Discipline
}

// New returns an empty worklist with the given discipline.
func New[T any](d Discipline) Worklist[T] {
	if d == FIFO {
		return NewQueue[T]()
	}
	return NewStack[T]()
}

// Stack is a last-in-first-out worklist.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

func (s *Stack[T]) Add(item T) { s.items = append(s.items, item) }

func (s *Stack[T]) Remove() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return item, true
}

func (s *Stack[T]) Len() int               { return len(s.items) }
func (s *Stack[T]) Discipline() Discipline { return LIFO }

// Queue is a first-in-first-out worklist backed by a slice with a moving head.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

func (q *Queue[T]) Add(item T) { q.items = append(q.items, item) }

func (q *Queue[T]) Remove() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}
	return item, true
}

func (q *Queue[T]) Len() int               { return len(q.items) - q.head }
func (q *Queue[T]) Discipline() Discipline { return FIFO }
