package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a request rejected before any computation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionUndefined is returned when a per-unit cost would divide by zero.
	ErrDivisionUndefined = errors.New("division undefined")

	// ErrVendorNotFound indicates the vendor is not in the catalog.
	ErrVendorNotFound = errors.New("vendor not found")
)

// InputError describes a single rejected input field.
type InputError struct {
	Field  string
	Value  int
	Min    int
	Max    int
	Reason string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %d is outside [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
