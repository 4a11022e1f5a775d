package travlist

// SimpleList keeps the list in a single buffer of capacity slots split by a
// gap at the cursor. The left segment fills buf[:left] in order and the right
// segment fills the tail of the buffer, the element right of the cursor at
// buf[len(buf)-right]. Lengths come straight from the two indexes.
type SimpleList[E any] struct {
	base[E]
	buf   []E
	left  int
	right int
}

// NewSimpleList returns an empty list. It panics if capacity is not positive.
func NewSimpleList[E any](capacity int) *SimpleList[E] {
	l := &SimpleList[E]{}
	l.base = newBase[E](l, capacity)
	l.buf = make([]E, capacity)
	return l
}

func (l *SimpleList[E]) Insert(e E) error {
	if isNil(e) {
		return errNilElement("insert")
	}
	if l.left+l.right == len(l.buf) {
		return errFull("insert", l.capacity)
	}
	l.right++
	l.buf[len(l.buf)-l.right] = e
	return nil
}

func (l *SimpleList[E]) Delete() (E, error) {
	var zero E
	if l.right == 0 {
		return zero, errEmptyRight("delete")
	}
	i := len(l.buf) - l.right
	e := l.buf[i]
	l.buf[i] = zero
	l.right--
	return e, nil
}

func (l *SimpleList[E]) Advance() error {
	if l.right == 0 {
		return errEmptyRight("advance")
	}
	var zero E
	i := len(l.buf) - l.right
	e := l.buf[i]
	l.buf[i] = zero
	l.buf[l.left] = e
	l.left++
	l.right--
	return nil
}

func (l *SimpleList[E]) Retreat() error {
	if l.left == 0 {
		return errEmptyLeft("retreat")
	}
	var zero E
	e := l.buf[l.left-1]
	l.buf[l.left-1] = zero
	l.left--
	l.right++
	l.buf[len(l.buf)-l.right] = e
	return nil
}

func (l *SimpleList[E]) Reset() {
	n := l.left
	if n == 0 {
		return
	}
	dst := len(l.buf) - l.right - n
	copy(l.buf[dst:], l.buf[:n])
	clear(l.buf[:min(n, dst)])
	l.left = 0
	l.right += n
}

func (l *SimpleList[E]) AdvanceToEnd() {
	n := l.right
	if n == 0 {
		return
	}
	src := len(l.buf) - n
	copy(l.buf[l.left:], l.buf[src:])
	clear(l.buf[max(src, l.left+n):])
	l.left += n
	l.right = 0
}

func (l *SimpleList[E]) GetNext() (E, bool) {
	if l.right == 0 {
		var zero E
		return zero, false
	}
	return l.buf[len(l.buf)-l.right], true
}

func (l *SimpleList[E]) GetPrevious() (E, bool) {
	if l.left == 0 {
		var zero E
		return zero, false
	}
	return l.buf[l.left-1], true
}

func (l *SimpleList[E]) LeftLength() int {
	return l.left
}

func (l *SimpleList[E]) RightLength() int {
	return l.right
}

func (l *SimpleList[E]) NewInstance() TravList[E] {
	return NewSimpleList[E](l.capacity)
}
