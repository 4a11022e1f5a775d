package travlist

import (
	"github.com/pkg/errors"

	"travlist/datastruct/list"
)

// StackList keeps the left segment and the right segment in two stacks whose
// tops face the cursor. Every primitive is a push or a pop.
type StackList[E any] struct {
	base[E]
	left  *list.ArrayDeque[E]
	right *list.ArrayDeque[E]
}

// NewStackList returns an empty list. It panics if capacity is not positive.
func NewStackList[E any](capacity int) *StackList[E] {
	l := &StackList[E]{}
	l.base = newBase[E](l, capacity)
	l.left = list.NewArrayDequeWithCap[E](capacity, true)
	l.right = list.NewArrayDequeWithCap[E](capacity, true)
	return l
}

func (l *StackList[E]) Insert(e E) error {
	if isNil(e) {
		return errNilElement("insert")
	}
	if l.left.Len()+l.right.Len() == l.capacity {
		return errFull("insert", l.capacity)
	}
	return errors.WithMessage(l.right.Push(e), "insert")
}

func (l *StackList[E]) Delete() (E, error) {
	e, err := l.right.Pop()
	if err != nil {
		return e, errEmptyRight("delete")
	}
	return e, nil
}

func (l *StackList[E]) Advance() error {
	if l.right.Len() == 0 {
		return errEmptyRight("advance")
	}
	return move(l.right, l.left)
}

func (l *StackList[E]) Retreat() error {
	if l.left.Len() == 0 {
		return errEmptyLeft("retreat")
	}
	return move(l.left, l.right)
}

func (l *StackList[E]) Reset() {
	for l.left.Len() > 0 {
		_ = move(l.left, l.right)
	}
}

func (l *StackList[E]) AdvanceToEnd() {
	for l.right.Len() > 0 {
		_ = move(l.right, l.left)
	}
}

func (l *StackList[E]) GetNext() (E, bool) {
	e, err := l.right.Top()
	return e, err == nil
}

func (l *StackList[E]) GetPrevious() (E, bool) {
	e, err := l.left.Top()
	return e, err == nil
}

func (l *StackList[E]) LeftLength() int {
	return l.left.Len()
}

func (l *StackList[E]) RightLength() int {
	return l.right.Len()
}

func (l *StackList[E]) NewInstance() TravList[E] {
	return NewStackList[E](l.capacity)
}

// SwapRights exchanges the right stacks themselves when that is a StackList
// too, in constant time. Other stores go through the generic algorithm.
func (l *StackList[E]) SwapRights(that TravList[E]) error {
	other, ok := that.(*StackList[E])
	if !ok {
		return SwapRights[E](l, that)
	}
	if other == l {
		return nil
	}
	if err := checkSwap[E](l, other); err != nil {
		return err
	}
	l.right, other.right = other.right, l.right
	return nil
}

func move[E any](from, to *list.ArrayDeque[E]) error {
	e, err := from.Pop()
	if err != nil {
		return err
	}
	return to.Push(e)
}
