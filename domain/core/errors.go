package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrBaselineNotFound = fmt.Errorf("%w: baseline", ErrNotFound)
	ErrColumnNotFound   = fmt.Errorf("%w: column", ErrNotFound)

	// Structural errors: malformed input, never silently coerced
	ErrTypeMismatch     = errors.New("value type does not match column classification")
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewColumnError(col ColumnKey, err error) error {
	return fmt.Errorf("column %s: %w", col, err)
}

func NewTypeMismatchError(col ColumnKey, value interface{}) error {
	return fmt.Errorf("%w: column %s got %T value %v", ErrTypeMismatch, col, value, value)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStructuralError(err error) bool {
	return errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrColumnNotFound)
}
