package errors

import (
	"context"
	"errors"
	"fmt"
)

// Common error types used across the framesink library

var (
	// ErrClosed indicates that an operation was attempted on a closed destination
	ErrClosed = errors.New("destination is closed")

	// ErrReleased indicates that the framed writer has released its channel and encoder
	ErrReleased = errors.New("writer has been released")

	// ErrNotReadable indicates that a destination has no read side to forward to
	ErrNotReadable = errors.New("destination does not support reading")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ValidationError describes a configuration field that failed validation.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{Module: module, Field: field, Value: value, Reason: reason}
}

// WithHint attaches a remediation hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap makes ValidationError match ErrInvalidConfiguration via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError returns true if err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsRetryable returns true if the error indicates a condition under which
// retrying the operation can still succeed; buffered bytes survive a
// canceled or timed-out drain, so a later flush resumes where it stopped
func IsRetryable(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsTerminal returns true if the error indicates that the destination
// will not accept further operations
func IsTerminal(err error) bool {
	return errors.Is(err, ErrClosed) || errors.Is(err, ErrReleased)
}
