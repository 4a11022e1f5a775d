package travlist

import (
	"iter"

	"github.com/pkg/errors"
)

type direction int

const (
	none direction = iota
	forward
	backward
)

// ListIterator is a bidirectional iterator with no state of its own besides
// the direction of the last move: every call moves or mutates the cursor of
// the list it was created from. Using the list directly while iterating is
// the caller's responsibility.
type ListIterator[E any] struct {
	list Cursor[E]
	last direction
}

// NewListIterator returns an iterator starting at the cursor of l.
func NewListIterator[E any](l Cursor[E]) *ListIterator[E] {
	return &ListIterator[E]{list: l}
}

func (it *ListIterator[E]) HasNext() bool {
	return it.list.RightLength() > 0
}

func (it *ListIterator[E]) HasPrevious() bool {
	return it.list.LeftLength() > 0
}

// Next returns the element right of the cursor and advances past it.
func (it *ListIterator[E]) Next() (E, error) {
	e, ok := it.list.GetNext()
	if !ok {
		return e, errors.WithMessage(ErrInvalidState, "list iterator: no next element")
	}
	if err := it.list.Advance(); err != nil {
		return e, err
	}
	it.last = forward
	return e, nil
}

// Previous retreats the cursor and returns the element it stepped over,
// which is now right of the cursor.
func (it *ListIterator[E]) Previous() (E, error) {
	if err := it.list.Retreat(); err != nil {
		var zero E
		return zero, errors.WithMessage(err, "list iterator")
	}
	e, _ := it.list.GetNext()
	it.last = backward
	return e, nil
}

func (it *ListIterator[E]) NextIndex() int {
	return it.list.LeftLength()
}

func (it *ListIterator[E]) PreviousIndex() int {
	return it.list.LeftLength() - 1
}

// Remove deletes the element returned by the last Next or Previous.
func (it *ListIterator[E]) Remove() error {
	switch it.last {
	case forward:
		if err := it.list.Retreat(); err != nil {
			return err
		}
	case backward:
	default:
		return errors.WithMessage(ErrInvalidState, "list iterator: remove without next or previous")
	}
	if _, err := it.list.Delete(); err != nil {
		return err
	}
	it.last = none
	return nil
}

// Set replaces the element returned by the last Next or Previous with e. The
// cursor keeps its position.
func (it *ListIterator[E]) Set(e E) error {
	if isNil(e) {
		return errNilElement("list iterator: set")
	}
	switch it.last {
	case forward:
		if err := it.list.Retreat(); err != nil {
			return err
		}
		if _, err := Replace[E](it.list, e); err != nil {
			return err
		}
		if err := it.list.Advance(); err != nil {
			return err
		}
	case backward:
		if _, err := Replace[E](it.list, e); err != nil {
			return err
		}
	default:
		return errors.WithMessage(ErrInvalidState, "list iterator: set without next or previous")
	}
	it.last = none
	return nil
}

// Add inserts e at the cursor; it becomes the element right of the cursor.
func (it *ListIterator[E]) Add(e E) error {
	if err := it.list.Insert(e); err != nil {
		return err
	}
	it.last = none
	return nil
}

// RightIterator iterates once over the right segment of a list by advancing
// its cursor. When the last element has been returned the cursor is put back
// where the iteration started. An iterator abandoned early leaves the cursor
// where it stopped.
type RightIterator[E any] struct {
	list   Cursor[E]
	pos    int
	length int
	count  int
}

// NewRightIterator captures the current cursor position of l.
func NewRightIterator[E any](l Cursor[E]) *RightIterator[E] {
	return &RightIterator[E]{
		list:   l,
		pos:    l.LeftLength(),
		length: l.RightLength(),
	}
}

func (it *RightIterator[E]) HasNext() bool {
	return it.count < it.length
}

func (it *RightIterator[E]) Next() (E, error) {
	if !it.HasNext() {
		var zero E
		return zero, errors.WithMessage(ErrInvalidState, "right iterator: exhausted")
	}
	e, _ := it.list.GetNext()
	if err := it.list.Advance(); err != nil {
		return e, err
	}
	it.count++
	if it.count == it.length {
		it.list.Reset()
		for i := 0; i < it.pos; i++ {
			if err := it.list.Advance(); err != nil {
				return e, err
			}
		}
	}
	return e, nil
}

// All adapts a RightIterator over l to a range-over-func sequence.
func All[E any](l Cursor[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		it := NewRightIterator(l)
		for it.HasNext() {
			e, err := it.Next()
			if err != nil || !yield(e) {
				return
			}
		}
	}
}
