package vfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrorKind is the closed classification applied to filesystem failures.
type ErrorKind string

const (
	// KindNotFound maps from the platform's "no such file or directory".
	KindNotFound ErrorKind = "not_found"
	// KindIsADirectory maps from "is a directory" on file-expecting operations.
	KindIsADirectory ErrorKind = "is_a_directory"
	// KindAlreadyExists maps from "file already exists".
	KindAlreadyExists ErrorKind = "already_exists"
	// KindNoPermission maps from both permission-denied spellings (EACCES, EPERM).
	KindNoPermission ErrorKind = "no_permission"
	// KindCancelled is raised synchronously when a cancellation check
	// observes a cancelled context before the next filesystem call.
	KindCancelled ErrorKind = "cancelled"
)

// Error is a classified filesystem failure.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// Unwrap exposes the underlying platform error.
func (e *Error) Unwrap() error { return e.Err }

// Classify maps a raw filesystem error onto the closed taxonomy. Errors
// outside the four classified codes pass through unmodified.
func Classify(path string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &Error{Kind: KindNotFound, Path: path, Err: err}
	case errors.Is(err, syscall.EISDIR):
		return &Error{Kind: KindIsADirectory, Path: path, Err: err}
	case errors.Is(err, fs.ErrExist):
		return &Error{Kind: KindAlreadyExists, Path: path, Err: err}
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return &Error{Kind: KindNoPermission, Path: path, Err: err}
	default:
		return err
	}
}

// Cancelled wraps a context cancellation for the given path.
func Cancelled(path string, err error) error {
	return &Error{Kind: KindCancelled, Path: path, Err: err}
}

// checkCancelled is the cooperative cancellation probe performed before
// every suspension point. Once a filesystem call has been issued it is
// never interrupted mid-flight.
func checkCancelled(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return Cancelled(path, err)
	}
	return nil
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fsErr *Error
	return errors.As(err, &fsErr) && fsErr.Kind == kind
}

// IsNotFound reports whether err classifies as NotFound.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsCancelled reports whether err classifies as Cancelled.
func IsCancelled(err error) bool { return IsKind(err, KindCancelled) }
