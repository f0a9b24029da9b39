package density

import (
	"cmp"
	"fmt"
)

// Order is the sort direction of a PriorityQueue.
type Order int

const (
	// Descending keeps the highest priority first. It is the zero value.
	Descending Order = iota
	// Ascending keeps the lowest priority first.
	Ascending
)

func (o Order) String() string {
	switch o {
	case Descending:
		return "desc"
	case Ascending:
		return "asc"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// PriorityQueue is a sorted worklist of elements paired with priorities.
//
// Unlike a heap, the queue keeps every element at its sorted position, so it
// can be read in order at any time and iterated by position while it is
// being modified. Elements inserted with a priority equal to existing ones
// are placed after them.
type PriorityQueue[E comparable, P cmp.Ordered] struct {
	order      Order
	elements   []E
	priorities []P
}

// NewPriorityQueue returns an empty queue sorted in the given order.
func NewPriorityQueue[E comparable, P cmp.Ordered](order Order) *PriorityQueue[E, P] {
	return &PriorityQueue[E, P]{order: order}
}

// NewPriorityQueueFrom returns a queue holding the given pairs, inserted one
// by one in slice order. It fails with ErrLengthMismatch when the slices have
// different lengths.
func NewPriorityQueueFrom[E comparable, P cmp.Ordered](elements []E, priorities []P, order Order) (*PriorityQueue[E, P], error) {
	if len(elements) != len(priorities) {
		return nil, fmt.Errorf("%w: %d elements, %d priorities", ErrLengthMismatch, len(elements), len(priorities))
	}
	q := NewPriorityQueue[E, P](order)
	for i := range elements {
		q.Insert(elements[i], priorities[i])
	}
	return q, nil
}

// Order returns the sort direction fixed at construction.
func (q *PriorityQueue[E, P]) Order() Order { return q.order }

// Len returns the number of queued elements.
func (q *PriorityQueue[E, P]) Len() int { return len(q.elements) }

// At returns the element at position i.
func (q *PriorityQueue[E, P]) At(i int) E { return q.elements[i] }

// PriorityAt returns the priority of the element at position i.
func (q *PriorityQueue[E, P]) PriorityAt(i int) P { return q.priorities[i] }

// before reports whether priority a sorts strictly ahead of b.
func (q *PriorityQueue[E, P]) before(a, b P) bool {
	if q.order == Ascending {
		return a < b
	}
	return a > b
}

// Insert adds e with the given priority.
//
// The queue is scanned from the back to the front and the element lands at
// the lowest position whose priority it strictly beats, or at the end when
// there is none.
func (q *PriorityQueue[E, P]) Insert(e E, priority P) {
	at := len(q.elements)
	for i := len(q.elements) - 1; i >= 0; i-- {
		if q.before(priority, q.priorities[i]) {
			at = i
		}
	}

	var zeroE E
	var zeroP P
	q.elements = append(q.elements, zeroE)
	q.priorities = append(q.priorities, zeroP)
	copy(q.elements[at+1:], q.elements[at:])
	copy(q.priorities[at+1:], q.priorities[at:])
	q.elements[at] = e
	q.priorities[at] = priority
}

// Remove deletes the first occurrence of e and its priority. Removing an
// element that is not queued is a no-op.
func (q *PriorityQueue[E, P]) Remove(e E) {
	for i, e2 := range q.elements {
		if e2 == e {
			q.elements = append(q.elements[:i], q.elements[i+1:]...)
			q.priorities = append(q.priorities[:i], q.priorities[i+1:]...)
			return
		}
	}
}

// Elements returns a copy of the queued elements in queue order.
func (q *PriorityQueue[E, P]) Elements() []E {
	out := make([]E, len(q.elements))
	copy(out, q.elements)
	return out
}

// Priorities returns a copy of the priorities in queue order.
func (q *PriorityQueue[E, P]) Priorities() []P {
	out := make([]P, len(q.priorities))
	copy(out, q.priorities)
	return out
}

// Entry is an element paired with its priority.
type Entry[E comparable, P cmp.Ordered] struct {
	Element  E
	Priority P
}

// ElementsWithPriorities returns the queued pairs in queue order.
func (q *PriorityQueue[E, P]) ElementsWithPriorities() []Entry[E, P] {
	out := make([]Entry[E, P], len(q.elements))
	for i := range q.elements {
		out[i] = Entry[E, P]{Element: q.elements[i], Priority: q.priorities[i]}
	}
	return out
}
