package replay

import "github.com/pkg/errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownList    = errors.New("unknown list")
	ErrDuplicateList  = errors.New("list already exists")
	// ErrSyntax reports a wrong number of arguments or a malformed number.
	ErrSyntax = errors.New("syntax error")
)
