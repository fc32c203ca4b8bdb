package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks every rejected argument or record. Callers surface it as a
	// validation message; nothing is computed once it is returned.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned by repositories when a record does not exist
	ErrNotFound = errors.New("not found")
)

// InvalidInputf wraps ErrInvalidInput with a formatted reason
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
