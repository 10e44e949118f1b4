package model

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is reported when the content can't be decoded as UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// NotFoundError is returned for a path which does not exist or is not a regular file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return e.Path + ": open: No such file"
}

// IOError wraps a failure to read or decode an input. Path is empty for stdin.
// Err is the underlying cause and its message is what users see.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("I/O error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("I/O error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
