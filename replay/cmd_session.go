package replay

import (
	"strconv"

	"github.com/pkg/errors"
)

// execNew new name [capacity]
func execNew(s *Session, args []string) error {
	capacity := s.capacity
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.WithMessagef(ErrSyntax, "capacity %q is not a number", args[1])
		}
		capacity = n
	}
	return s.create(args[0], capacity)
}

// execUse use name
func execUse(s *Session, args []string) error {
	if _, err := s.lookup(args[0]); err != nil {
		return err
	}
	s.current = args[0]
	return nil
}

func init() {
	registerCmd("new", execNew, 1, 2)
	registerCmd("use", execUse, 1, 1)
}
