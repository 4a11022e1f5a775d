package travlist

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind names a backing store.
type Kind string

const (
	KindSimple Kind = "simple"
	KindStack  Kind = "stack"
	KindLinked Kind = "linked"
)

// Kinds lists every backing store.
var Kinds = []Kind{KindSimple, KindStack, KindLinked}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindSimple, KindStack, KindLinked:
		return k, nil
	}
	return "", errors.WithMessagef(ErrInvalidArgument, "unknown store kind %q", s)
}

// New returns an empty list of the given store.
func New[E any](kind Kind, capacity int) (TravList[E], error) {
	if capacity <= 0 {
		return nil, errors.WithMessagef(ErrInvalidArgument, "capacity %d is not positive", capacity)
	}
	switch kind {
	case KindSimple:
		return NewSimpleList[E](capacity), nil
	case KindStack:
		return NewStackList[E](capacity), nil
	case KindLinked:
		return NewLinkedList[E](capacity), nil
	}
	return nil, errors.WithMessagef(ErrInvalidArgument, "unknown store kind %q", kind)
}
