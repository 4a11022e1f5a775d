// Package travlist implements bounded traversable lists: sequences split by a
// cursor into a left and a right segment, with interchangeable backing stores.
//
// A list is usually depicted as [l1, l2, ...][r1, r2, ...]:c where the l
// elements are left of the cursor, the r elements right of it and c is the
// capacity. r1 is the element immediately right of the cursor.
//
// Lists are not safe for concurrent use.
package travlist

import (
	"fmt"
	"iter"
)

// Cursor is the primitive operation set every backing store supplies.
type Cursor[E any] interface {
	// Insert places e immediately right of the cursor. The cursor does not move.
	Insert(e E) error
	// Delete removes and returns the element immediately right of the cursor.
	Delete() (E, error)
	// Advance moves the cursor one element to the right.
	Advance() error
	// Retreat moves the cursor one element to the left.
	Retreat() error
	// Reset moves the cursor to the beginning of the list.
	Reset()
	// AdvanceToEnd moves the cursor to the end of the list.
	AdvanceToEnd()
	// GetNext returns the element right of the cursor, false when there is none.
	GetNext() (E, bool)
	// GetPrevious returns the element left of the cursor, false when there is none.
	GetPrevious() (E, bool)
	// LeftLength returns the number of elements left of the cursor.
	LeftLength() int
	// RightLength returns the number of elements right of the cursor.
	RightLength() int
	// Capacity returns the fixed maximum number of elements.
	Capacity() int
	// NewInstance returns an empty list of the same store and capacity.
	NewInstance() TravList[E]
	// SwapRights exchanges the right segment of the list with the right
	// segment of that. Left segments are untouched.
	SwapRights(that TravList[E]) error
}

// TravList is a bounded traversable list.
type TravList[E any] interface {
	Cursor[E]
	fmt.Stringer

	// Replace swaps the element right of the cursor for e and returns the old one.
	Replace(e E) (E, error)
	// Reverse moves every element to the left of the cursor in reverse order.
	// The cursor ends at the end of the list.
	Reverse() error
	// Splice moves every element of that, in order, to the left of the cursor.
	// The cursor of that must be at its beginning; that is empty afterwards.
	Splice(that TravList[E]) error
	// ListIterator returns an iterator that drives the cursor of the list.
	ListIterator() *ListIterator[E]
	// Iterator returns a single-pass iterator over the right segment.
	Iterator() *RightIterator[E]
	// All yields the right segment, see RightIterator for cursor effects.
	All() iter.Seq[E]
}

var (
	_ TravList[any] = &SimpleList[any]{}
	_ TravList[any] = &StackList[any]{}
	_ TravList[any] = &LinkedList[any]{}
)
