// Package errors defines the failure kinds shared by every domain package.
//
// Domain packages declare their own error values by wrapping one of the kinds below, so
// callers can branch on the kind (errors.Is(err, ErrIO)) without importing the domain
// that produced it. The CLI reports the kind next to every fatal error.
package errors

import (
	"errors"
	"fmt"
)

// Failure kinds.
var (
	// ErrNotFound indicates something the caller named does not exist: a key store, a column.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates an operation would overwrite existing state, such as creating a
	// key where one is already stored.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates malformed caller input: configuration, arguments, tables, tokens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIO indicates a read or write against durable storage failed.
	ErrIO = errors.New("i/o failure")
)

// Kind labels, as returned by Kind.
const (
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindInvalidInput = "invalid_input"
	KindIO           = "io"
	KindInternal     = "internal"
)

// New creates an error that carries no kind.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message, keeping err in the chain. Returns nil for a nil err.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Kind returns the label of the first failure kind found in err's tree,
// KindInternal when err carries none, and "" for a nil err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return KindInternal
	}
}
