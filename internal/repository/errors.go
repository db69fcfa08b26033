package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by every backend when an ID does not address a stored game,
// including IDs that are not well-formed for the backend.
var ErrNotFound = errors.New("game not found")

// StoreError wraps an infrastructure failure of the underlying store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Wrap returns err wrapped in a StoreError for op, or nil if err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err is, or wraps, a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
