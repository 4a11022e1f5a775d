package travlist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Replace deletes the element right of the cursor and inserts e in its place.
func Replace[E any](l Cursor[E], e E) (E, error) {
	if isNil(e) {
		var zero E
		return zero, errNilElement("replace")
	}
	old, err := l.Delete()
	if err != nil {
		return old, errors.WithMessage(err, "replace")
	}
	if err := l.Insert(e); err != nil {
		return old, err
	}
	return old, nil
}

// Reverse reverses the list recursively, one call per element, using only the
// primitives. When the right segment is empty nothing happens; otherwise the
// cursor is reset first and ends at the end of the list.
func Reverse[E any](l TravList[E]) error {
	if l.RightLength() == 0 {
		return nil
	}
	l.Reset()
	e, err := l.Delete()
	if err != nil {
		return err
	}
	if err := Reverse(l); err != nil {
		return err
	}
	l.AdvanceToEnd()
	if err := l.Insert(e); err != nil {
		return err
	}
	l.AdvanceToEnd()
	return nil
}

// SwapRights exchanges the right segments of this and that by draining both
// into scratch lists and refilling crosswise. It moves O(n+m) elements and
// works for any pair of stores.
func SwapRights[E any](this, that TravList[E]) error {
	if same(this, that) {
		return nil
	}
	if err := checkSwap[E](this, that); err != nil {
		return err
	}
	revThis, revThat := this.NewInstance(), that.NewInstance()
	if err := transfer[E](this, revThis); err != nil {
		return err
	}
	if err := transfer[E](that, revThat); err != nil {
		return err
	}
	if err := transfer[E](revThat, this); err != nil {
		return err
	}
	return transfer[E](revThis, that)
}

// Splice moves the whole content of that to the left of the cursor of this,
// using only SwapRights, Reset and AdvanceToEnd.
func Splice[E any](this, that TravList[E]) error {
	if that.LeftLength() != 0 {
		return errors.WithMessage(ErrInvalidArgument, "splice: cursor of the spliced list is not at its beginning")
	}
	n := that.RightLength()
	if same(this, that) {
		if n == 0 {
			return nil
		}
		return errors.WithMessage(ErrInvalidArgument, "splice: list spliced into itself")
	}
	if size := this.LeftLength() + this.RightLength() + n; size > this.Capacity() {
		return errors.WithMessagef(ErrInvalidArgument, "splice: %d elements exceed capacity %d", size, this.Capacity())
	}

	temp := this.NewInstance()
	if err := this.SwapRights(temp); err != nil {
		return err
	}
	if err := this.SwapRights(that); err != nil {
		return err
	}
	this.AdvanceToEnd()
	return this.SwapRights(temp)
}

// Segments returns copies of the left and right segments. The cursor is back
// at its original position on return.
func Segments[E any](l TravList[E]) (left, right []E) {
	pos := l.LeftLength()
	l.Reset()
	it := NewRightIterator[E](l)
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if len(left) < pos {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}
	for i := 0; i < pos; i++ {
		if err := l.Advance(); err != nil {
			break
		}
	}
	return left, right
}

// Format renders l as [l1, l2, ...][r1, r2, ...]:capacity without moving the
// cursor.
func Format[E any](l TravList[E]) string {
	left, right := Segments(l)
	var sb strings.Builder
	writeSegment(&sb, left)
	writeSegment(&sb, right)
	fmt.Fprintf(&sb, ":%d", l.Capacity())
	return sb.String()
}

// Equal reports whether a and b have the same capacity and the same left and
// right segments, whatever their stores.
func Equal[E comparable](a, b TravList[E]) bool {
	if a.Capacity() != b.Capacity() {
		return false
	}
	if a.LeftLength() != b.LeftLength() || a.RightLength() != b.RightLength() {
		return false
	}
	aLeft, aRight := Segments(a)
	bLeft, bRight := Segments(b)
	return slices.Equal(aLeft, bLeft) && slices.Equal(aRight, bRight)
}

// Hash returns a 64-bit hash of the rendering of l.
func Hash[E any](l TravList[E]) uint64 {
	return xxhash.Sum64String(Format(l))
}

func writeSegment[E any](sb *strings.Builder, segment []E) {
	sb.WriteByte('[')
	for i, e := range segment {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, e)
	}
	sb.WriteByte(']')
}

func checkSwap[E any](this, that Cursor[E]) error {
	thisRight, thatRight := this.RightLength(), that.RightLength()
	if this.LeftLength()+thatRight > this.Capacity() || that.LeftLength()+thisRight > that.Capacity() {
		return errors.WithMessagef(ErrInvalidArgument,
			"swap rights: segments do not fit capacities %d and %d", this.Capacity(), that.Capacity())
	}
	return nil
}

// transfer drains the right segment of from into to, reversing it.
func transfer[E any](from, to Cursor[E]) error {
	for n := from.RightLength(); n > 0; n-- {
		e, err := from.Delete()
		if err != nil {
			return err
		}
		if err := to.Insert(e); err != nil {
			return err
		}
	}
	return nil
}

func same[E any](a, b TravList[E]) bool {
	return any(a) == any(b)
}
