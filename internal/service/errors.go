package service

import (
	"errors"
	"fmt"

	"taskboard/internal/repository"
)

var (
	// ErrNotFound means the operation targeted an id with no row behind it.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable means no row store is configured.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrInvalidInput = errors.New("invalid input")
)

// StoreError wraps a failure reported by the row store for an otherwise
// valid request.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: store error: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeErr classifies an error coming back from a repository.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w: %v", op, ErrNotFound, err)
	}
	return &StoreError{Op: op, Err: err}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
