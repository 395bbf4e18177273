package fileio

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind categorizes filesystem failures.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "not_found"
	KindPermission ErrorKind = "permission"
	KindExists     ErrorKind = "exists"
	KindOther      ErrorKind = "other"
)

// IOError represents a failed filesystem operation.
type IOError struct {
	Kind ErrorKind // Categorized failure kind
	Op   string    // What operation failed (e.g. "read", "copy")
	Path string    // The path the operation failed on
	Err  error     // Wrapped OS error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("fileio: %s %s: %v (kind=%s)", e.Op, e.Path, e.Err, e.Kind)
}

// Unwrap returns the wrapped OS error for errors.Is/As.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ClassifyError determines the error kind from an OS error.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrExist):
		return KindExists
	default:
		return KindOther
	}
}

// newIOError wraps an OS error with its classified kind.
func newIOError(op, path string, err error) *IOError {
	return &IOError{
		Kind: ClassifyError(err),
		Op:   op,
		Path: path,
		Err:  err,
	}
}
