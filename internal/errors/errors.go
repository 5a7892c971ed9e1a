// Package errors provides standardized domain errors with codes for the storefront API.
//
// Usage:
//
//	// In services - return typed errors
//	if line == nil {
//	    return errors.NotFound("cart line not found")
//	}
//
//	// In handlers - check with errors.Is
//	if errors.Is(err, errors.ErrNotFound) {
//	    ...
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeNotFound    Code = "NOT_FOUND"
	CodeValidation  Code = "VALIDATION"
	CodeConflict    Code = "CONFLICT"
	CodeUnavailable Code = "UNAVAILABLE"
	CodeInternal    Code = "INTERNAL"
)

// HTTPStatus returns the appropriate HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound    = &Error{Code: CodeNotFound, Message: "not found"}
	ErrValidation  = &Error{Code: CodeValidation, Message: "validation error"}
	ErrConflict    = &Error{Code: CodeConflict, Message: "conflict"}
	ErrUnavailable = &Error{Code: CodeUnavailable, Message: "service unavailable"}
	ErrInternal    = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Conflict creates a conflict error.
func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

// Unavailable creates an unavailable error. Used for transport failures
// surfaced by the catalog provider.
func Unavailable(msg string) *Error {
	return &Error{Code: CodeUnavailable, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Internalf creates an internal error with formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
