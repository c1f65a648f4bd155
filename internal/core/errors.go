package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree operations. Callers match them with errors.Is;
// the rendered messages follow shell convention because the dispatcher
// forwards them verbatim to the user.
var (
	ErrNotFound       = errors.New("no such file or directory")
	ErrNotADirectory  = errors.New("not a directory")
	ErrIsADirectory   = errors.New("is a directory")
	ErrExists         = errors.New("file exists")
	ErrMissingOperand = errors.New("missing operand")
)

// PathError records the operation, the offending path, and the error kind.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

func pathErr(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Err: err}
}
