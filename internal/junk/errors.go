package junk

import "fmt"

// PathNotFoundError reports a configured root that does not exist.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path does not exist: %s", e.Path)
}

// NotADirectoryError reports a configured root that exists but is not a
// directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("path is not a directory: %s", e.Path)
}

// PermissionError reports an access failure on a path.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Path)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// TraversalError reports an I/O failure while walking a directory.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("failed to traverse directory %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }

// DeletionError reports a failed recursive removal.
type DeletionError struct {
	Path string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("failed to delete %s: %v", e.Path, e.Err)
}

func (e *DeletionError) Unwrap() error { return e.Err }

// MetadataError reports a failed size or file-count read.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("failed to get metadata for %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// MultiError aggregates several errors from one batch operation.
type MultiError struct {
	Errs []error
}

func (e *MultiError) Error() string {
	return fmt.Sprintf("multiple errors occurred: %d errors", len(e.Errs))
}

func (e *MultiError) Unwrap() []error { return e.Errs }
