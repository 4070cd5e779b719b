// Package errors provides structured error types for moodart.
//
// Every failure the art engine can surface to a caller carries a
// machine-readable [Code] so the CLI and the HTTP API can react to it
// without string matching:
//
//   - UNKNOWN_MOOD / UNKNOWN_STYLE: a value outside the closed enumerations
//     reached dispatch. This is a programming error on the caller's side and
//     aborts the request.
//   - RENDERING_UNAVAILABLE: the drawing surface could not be created or
//     encoded. The request produced nothing and may be retried.
//   - INVALID_INPUT / NOT_FOUND / INTERNAL_ERROR: the usual suspects.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownStyle, "unknown style: %q", s)
//	if errors.Is(err, errors.ErrCodeUnknownStyle) {
//	    // reject the request
//	}
//
//	err := errors.Wrap(errors.ErrCodeRenderingUnavailable, cause, "allocate %dx%d surface", w, h)
//	if errors.IsRetryable(err) {
//	    // the caller may try again
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeUnknownMood  Code = "UNKNOWN_MOOD"
	ErrCodeUnknownStyle Code = "UNKNOWN_STYLE"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Rendering errors
	ErrCodeRenderingUnavailable Code = "RENDERING_UNAVAILABLE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsRetryable reports whether the caller may re-invoke the failed operation.
// Only RENDERING_UNAVAILABLE qualifies; unknown enum values will fail again.
func IsRetryable(err error) bool {
	return Is(err, ErrCodeRenderingUnavailable)
}
