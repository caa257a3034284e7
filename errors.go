package fieldpath

import (
	"errors"
	"fmt"
)

// ErrInvalidPath matches every *InvalidPathError via errors.Is.
var ErrInvalidPath = errors.New("fieldpath: invalid path")

// InvalidPathError reports a declaration that is not a simple member or index
// access. It is a programming error on the caller's side and is never cached.
type InvalidPathError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidPathError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("fieldpath: invalid path %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("fieldpath: invalid path %q: %s", e.Path, e.Reason)
}

func (e *InvalidPathError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}

func invalidPath(path, reason string) *InvalidPathError {
	return &InvalidPathError{Path: path, Reason: reason}
}
