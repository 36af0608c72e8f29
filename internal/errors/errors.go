// Package errors provides sentinel errors, structured error details and
// exit codes for the create-rapo CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes.
const (
	// ExitSuccess indicates the run completed, or the user cancelled it.
	ExitSuccess = 0

	// ExitGeneralError indicates an unrecovered failure (I/O, parse, copy).
	ExitGeneralError = 1

	// ExitValidationError indicates invalid flag input.
	ExitValidationError = 2
)

// Sentinel errors for known conditions.
var (
	// ErrCancelled indicates the user cancelled an interactive step.
	ErrCancelled = errors.New("operation cancelled")

	// ErrValidation indicates invalid user-supplied input such as an unknown flag value.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, directory or file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}

	if e.Hint != "" {
		b.WriteString("\n  Hint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// CancelError is returned when the run stops early without failing.
// Message is the notice shown to the user.
type CancelError struct {
	Message string
}

// Error implements the error interface.
func (e *CancelError) Error() string {
	return e.Message
}

// Is reports ErrCancelled so callers can use errors.Is.
func (e *CancelError) Is(target error) bool {
	return target == ErrCancelled
}

// NewCancelError creates a cancellation with the given notice.
// An empty message falls back to "Operation cancelled".
func NewCancelError(message string) error {
	if message == "" {
		message = "Operation cancelled"
	}
	return &CancelError{Message: message}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is true when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrCancelled):
		return ExitSuccess
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	default:
		return ExitGeneralError
	}
}

// WrapCause wraps err with a sentinel and a message, keeping both in the chain.
func WrapCause(sentinel, err error, message string) error {
	return fmt.Errorf("%s: %w: %w", message, sentinel, err)
}
