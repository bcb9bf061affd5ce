// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the segarr library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrOutOfRange        = fmt.Errorf("index out of range")
	ErrAllocFailed       = fmt.Errorf("block allocation failed")
	ErrConsumed          = fmt.Errorf("container consumed or closed")
	ErrNotSupported      = fmt.Errorf("operation not supported")
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeAllocFailed
	ErrCodeConsumed
	ErrCodeNotSupported
	ErrCodeResourceExhausted
	ErrCodeInternal
)

// sentinel maps a code to the sentinel error it wraps.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeAllocFailed:
		return ErrAllocFailed
	case ErrCodeConsumed:
		return ErrConsumed
	case ErrCodeNotSupported:
		return ErrNotSupported
	case ErrCodeResourceExhausted:
		return ErrResourceExhausted
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the error onto its sentinel so that errors.Is works against
// the package-level error values.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
