package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"travlist/datastruct/travlist"
)

const none = "(none)"

// execInsert insert value [values...]
// Values are inserted one after the other at the cursor, so the last one ends
// up right of it. Nothing is inserted unless all of them fit.
func execInsert(s *Session, args []string) error {
	l := s.selected()
	if size := l.LeftLength() + l.RightLength(); size+len(args) > l.Capacity() {
		return errors.WithMessagef(travlist.ErrInvalidArgument,
			"insert: %d elements do not fit, %d of %d used", len(args), size, l.Capacity())
	}
	for _, v := range args {
		if err := l.Insert(v); err != nil {
			return err
		}
	}
	return nil
}

// execDelete delete, prints the removed element
func execDelete(s *Session, args []string) error {
	e, err := s.selected().Delete()
	if err != nil {
		return err
	}
	s.println(e)
	return nil
}

// execAdvance advance [n]
func execAdvance(s *Session, args []string) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}
	l := s.selected()
	if n > l.RightLength() {
		return errors.WithMessagef(travlist.ErrInvalidState,
			"advance: %d steps, %d elements right of cursor", n, l.RightLength())
	}
	for i := 0; i < n; i++ {
		if err := l.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// execRetreat retreat [n]
func execRetreat(s *Session, args []string) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}
	l := s.selected()
	if n > l.LeftLength() {
		return errors.WithMessagef(travlist.ErrInvalidState,
			"retreat: %d steps, %d elements left of cursor", n, l.LeftLength())
	}
	for i := 0; i < n; i++ {
		if err := l.Retreat(); err != nil {
			return err
		}
	}
	return nil
}

func execReset(s *Session, args []string) error {
	s.selected().Reset()
	return nil
}

func execEnd(s *Session, args []string) error {
	s.selected().AdvanceToEnd()
	return nil
}

// execReplace replace value, prints the replaced element
func execReplace(s *Session, args []string) error {
	old, err := s.selected().Replace(args[0])
	if err != nil {
		return err
	}
	s.println(old)
	return nil
}

func execReverse(s *Session, args []string) error {
	return s.selected().Reverse()
}

// execSwap swap name
func execSwap(s *Session, args []string) error {
	that, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	return s.selected().SwapRights(that)
}

// execSplice splice name
func execSplice(s *Session, args []string) error {
	that, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	return s.selected().Splice(that)
}

func execNext(s *Session, args []string) error {
	e, ok := s.selected().GetNext()
	if !ok {
		s.println(none)
		return nil
	}
	s.println(e)
	return nil
}

func execPrev(s *Session, args []string) error {
	e, ok := s.selected().GetPrevious()
	if !ok {
		s.println(none)
		return nil
	}
	s.println(e)
	return nil
}

func execShow(s *Session, args []string) error {
	s.println(s.selected().String())
	return nil
}

// execLengths prints left length, right length and capacity
func execLengths(s *Session, args []string) error {
	l := s.selected()
	s.println(l.LeftLength(), l.RightLength(), l.Capacity())
	return nil
}

// execItems walks the right segment with a list iterator and walks back, so
// the cursor ends where it started.
func execItems(s *Session, args []string) error {
	it := s.selected().ListIterator()
	var items []string
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		items = append(items, e)
	}
	for range items {
		if _, err := it.Previous(); err != nil {
			return err
		}
	}
	if len(items) == 0 {
		s.println(none)
		return nil
	}
	s.println(strings.Join(items, " "))
	return nil
}

func execHash(s *Session, args []string) error {
	s.println(fmt.Sprintf("%016x", travlist.Hash(s.selected())))
	return nil
}

func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, errors.WithMessagef(ErrSyntax, "count %q is not a positive number", args[0])
	}
	return n, nil
}

func init() {
	registerCmd("insert", execInsert, 1, -1)
	registerCmd("delete", execDelete, 0, 0)
	registerCmd("advance", execAdvance, 0, 1)
	registerCmd("retreat", execRetreat, 0, 1)
	registerCmd("reset", execReset, 0, 0)
	registerCmd("end", execEnd, 0, 0)
	registerCmd("replace", execReplace, 1, 1)
	registerCmd("reverse", execReverse, 0, 0)
	registerCmd("swap", execSwap, 1, 1)
	registerCmd("splice", execSplice, 1, 1)
	registerCmd("next", execNext, 0, 0)
	registerCmd("prev", execPrev, 0, 0)
	registerCmd("show", execShow, 0, 0)
	registerCmd("lengths", execLengths, 0, 0)
	registerCmd("items", execItems, 0, 0)
	registerCmd("hash", execHash, 0, 0)
}
