package store

import "fmt"

// PathValidationError signals a services file path outside the allowed
// directory tree.
type PathValidationError struct {
	Path   string
	Reason string
}

func NewPathValidationError(path, reason string) *PathValidationError {
	return &PathValidationError{Path: path, Reason: reason}
}

func (e *PathValidationError) Error() string {
	return fmt.Sprintf("invalid services file path %q: %s", e.Path, e.Reason)
}

// NotFoundError signals an absent services file.
type NotFoundError struct {
	Path string
}

func NewNotFoundError(path string) *NotFoundError {
	return &NotFoundError{Path: path}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("services file not found: %s", e.Path)
}
