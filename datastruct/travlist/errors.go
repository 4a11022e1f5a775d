package travlist

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument reports a nil element, an insert into a full list or a
	// violated argument precondition.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState reports a positional operation on an empty side of the cursor.
	ErrInvalidState = errors.New("invalid state")
)

func errNilElement(op string) error {
	return errors.WithMessagef(ErrInvalidArgument, "%s: nil element", op)
}

func errFull(op string, capacity int) error {
	return errors.WithMessagef(ErrInvalidArgument, "%s: list is full (capacity %d)", op, capacity)
}

func errEmptyRight(op string) error {
	return errors.WithMessagef(ErrInvalidState, "%s: nothing right of cursor", op)
}

func errEmptyLeft(op string) error {
	return errors.WithMessagef(ErrInvalidState, "%s: nothing left of cursor", op)
}

// isNil reports whether e is a nil value of a nilable kind.
func isNil[E any](e E) bool {
	v := any(e)
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflect.ValueOf(v).IsNil()
	}
	return false
}
