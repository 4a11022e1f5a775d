package list

import (
	"errors"
)

var _ Dequeue[int] = &ArrayDeque[int]{}

const (
	minCapacity int = 1 << 4
	maxCapacity int = 1 << 30
)

var (
	ErrorOutOfCapacity = errors.New("out of max capacity")
	ErrorEmpty         = errors.New("array deque is empty")
	ErrorOutIndex      = errors.New("out of index")
	ErrorNil           = errors.New("not allowed null point")
)

// ArrayDeque is a ring buffer deque whose buffer length is always a power of
// two. Without growth it holds at most Cap() elements; with growth the buffer
// doubles up to 2^30 slots.
type ArrayDeque[E any] struct {
	head     int
	tail     int
	size     int
	growth   bool
	elements []E
}

func NewArrayDeque[E any](growth bool) *ArrayDeque[E] {
	return NewArrayDequeWithCap[E](minCapacity, growth)
}

func NewArrayDequeWithCap[E any](c int, growth bool) *ArrayDeque[E] {
	capacity := calculateCapacity(c)
	return &ArrayDeque[E]{
		growth:   growth,
		elements: make([]E, capacity),
	}
}

func (a *ArrayDeque[E]) Enqueue(ele E) error {
	return a.AddLast(ele)
}

func (a *ArrayDeque[E]) Dequeue() (E, error) {
	return a.RemoveFirst()
}

func (a *ArrayDeque[E]) Front() (E, error) {
	return a.GetFirst()
}

// Push, Pop and Top use the last element as the top of a stack.
func (a *ArrayDeque[E]) Push(ele E) error {
	return a.AddLast(ele)
}

func (a *ArrayDeque[E]) Pop() (E, error) {
	return a.RemoveLast()
}

func (a *ArrayDeque[E]) Top() (E, error) {
	return a.GetLast()
}

func (a *ArrayDeque[E]) Get(index int) (E, error) {
	if index < 0 || index >= a.Len() {
		var zero E
		return zero, ErrorOutIndex
	}
	t := (a.head + index) & (a.Cap() - 1)
	return a.elements[t], nil
}

func (a *ArrayDeque[E]) Len() int {
	return a.size
}

func (a *ArrayDeque[E]) Cap() int {
	return len(a.elements)
}

func (a *ArrayDeque[E]) AddFirst(ele E) error {
	if any(ele) == nil {
		return ErrorNil
	}
	if err := a.ensureCapacity(); err != nil {
		return err
	}
	a.head = (a.head - 1) & (a.Cap() - 1)
	a.elements[a.head] = ele
	a.size++
	return nil
}

func (a *ArrayDeque[E]) AddLast(ele E) error {
	if any(ele) == nil {
		return ErrorNil
	}
	if err := a.ensureCapacity(); err != nil {
		return err
	}
	a.elements[a.tail] = ele
	a.tail = (a.tail + 1) & (a.Cap() - 1)
	a.size++
	return nil
}

func (a *ArrayDeque[E]) RemoveLast() (E, error) {
	var zero E
	if a.Len() == 0 {
		return zero, ErrorEmpty
	}
	a.tail = (a.tail - 1) & (a.Cap() - 1)
	result := a.elements[a.tail]
	a.elements[a.tail] = zero
	a.size--
	return result, nil
}

func (a *ArrayDeque[E]) RemoveFirst() (E, error) {
	var zero E
	if a.Len() == 0 {
		return zero, ErrorEmpty
	}
	result := a.elements[a.head]
	a.elements[a.head] = zero
	a.head = (a.head + 1) & (a.Cap() - 1)
	a.size--
	return result, nil
}

func (a *ArrayDeque[E]) GetFirst() (E, error) {
	if a.Len() == 0 {
		var zero E
		return zero, ErrorEmpty
	}
	return a.elements[a.head], nil
}

func (a *ArrayDeque[E]) GetLast() (E, error) {
	if a.Len() == 0 {
		var zero E
		return zero, ErrorEmpty
	}
	t := (a.tail - 1) & (a.Cap() - 1)
	return a.elements[t], nil
}

func (a *ArrayDeque[E]) ForEach(f func(value E, index int) bool) {
	for i := 0; i < a.Len(); i++ {
		eleIdx := (a.head + i) & (a.Cap() - 1)
		if !f(a.elements[eleIdx], i) {
			break
		}
	}
}

func (a *ArrayDeque[E]) ensureCapacity() error {
	if a.size < a.Cap() {
		return nil
	}
	if !a.growth {
		return ErrorOutOfCapacity
	}
	return a.doubleCapacity()
}

// doubleCapacity is only called on a full buffer, where head == tail.
func (a *ArrayDeque[E]) doubleCapacity() error {
	n := a.Cap()
	newCapacity := n << 1
	if newCapacity < 0 || newCapacity > maxCapacity {
		return ErrorOutOfCapacity
	}
	newElements := make([]E, newCapacity)
	r := n - a.head
	copy(newElements[0:r], a.elements[a.head:])
	copy(newElements[r:], a.elements[:a.tail])
	a.elements = newElements
	a.head = 0
	a.tail = n
	return nil
}

func calculateCapacity(expected int) int {
	initialCapacity := minCapacity
	if expected > initialCapacity {
		initialCapacity = expected - 1
		initialCapacity |= initialCapacity >> 1
		initialCapacity |= initialCapacity >> 2
		initialCapacity |= initialCapacity >> 4
		initialCapacity |= initialCapacity >> 8
		initialCapacity |= initialCapacity >> 16
		initialCapacity++
		if initialCapacity < 0 || initialCapacity >= maxCapacity {
			initialCapacity = maxCapacity
		}
	}
	return initialCapacity
}
