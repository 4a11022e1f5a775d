package travlist

type node[E any] struct {
	value      E
	prev, next *node[E]
}

// link inserts s after n.
func (n *node[E]) link(s *node[E]) {
	next := n.next
	n.next = s
	s.prev = n
	next.prev = s
	s.next = next
}

// unlink removes n from its ring.
func (n *node[E]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// LinkedList is a circular doubly linked list anchored on a guard node. The
// cursor is the pair of adjacent nodes (prev, next); at either end one of them
// is the guard. LeftLength and RightLength walk to the guard and cost O(n).
type LinkedList[E any] struct {
	base[E]
	guard *node[E]
	prev  *node[E]
	next  *node[E]
	size  int
}

// NewLinkedList returns an empty list. It panics if capacity is not positive.
func NewLinkedList[E any](capacity int) *LinkedList[E] {
	l := &LinkedList[E]{}
	l.base = newBase[E](l, capacity)
	l.guard = &node[E]{}
	l.guard.prev = l.guard
	l.guard.next = l.guard
	l.prev = l.guard
	l.next = l.guard
	return l
}

func (l *LinkedList[E]) Insert(e E) error {
	if isNil(e) {
		return errNilElement("insert")
	}
	if l.size == l.capacity {
		return errFull("insert", l.capacity)
	}
	n := &node[E]{value: e}
	l.prev.link(n)
	l.next = n
	l.size++
	return nil
}

func (l *LinkedList[E]) Delete() (E, error) {
	if l.next == l.guard {
		var zero E
		return zero, errEmptyRight("delete")
	}
	n := l.next
	l.next = n.next
	n.unlink()
	l.size--
	return n.value, nil
}

func (l *LinkedList[E]) Advance() error {
	if l.next == l.guard {
		return errEmptyRight("advance")
	}
	l.prev = l.next
	l.next = l.next.next
	return nil
}

func (l *LinkedList[E]) Retreat() error {
	if l.prev == l.guard {
		return errEmptyLeft("retreat")
	}
	l.next = l.prev
	l.prev = l.prev.prev
	return nil
}

func (l *LinkedList[E]) Reset() {
	l.prev = l.guard
	l.next = l.guard.next
}

func (l *LinkedList[E]) AdvanceToEnd() {
	l.prev = l.guard.prev
	l.next = l.guard
}

func (l *LinkedList[E]) GetNext() (E, bool) {
	return l.next.value, l.next != l.guard
}

func (l *LinkedList[E]) GetPrevious() (E, bool) {
	return l.prev.value, l.prev != l.guard
}

func (l *LinkedList[E]) LeftLength() int {
	n := 0
	for p := l.prev; p != l.guard; p = p.prev {
		n++
	}
	return n
}

func (l *LinkedList[E]) RightLength() int {
	n := 0
	for p := l.next; p != l.guard; p = p.next {
		n++
	}
	return n
}

func (l *LinkedList[E]) NewInstance() TravList[E] {
	return NewLinkedList[E](l.capacity)
}
