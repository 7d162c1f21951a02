// Package errors provides structured error types for adaptivegrid.
//
// Every error that crosses a package boundary carries a machine-readable
// [Code] so the CLI can print a clean message and the HTTP server can map it
// to a status code without string matching.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration or input validation failures
//   - *_NOT_FOUND: missing files or resources
//   - INTERNAL_*: unexpected internal errors
//
// Layout strategies only ever fail at construction time, and only with
// [ErrCodeInvalidConfiguration]. Measuring and placing never return errors.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfiguration, "columns must be >= 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidConfiguration) {
//	    // Handle bad configuration
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidScene, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration and input validation errors
	ErrCodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	ErrCodeInvalidStrategy      Code = "INVALID_STRATEGY"
	ErrCodeInvalidAnchor        Code = "INVALID_ANCHOR"
	ErrCodeInvalidInput         Code = "INVALID_INPUT"
	ErrCodeInvalidFormat        Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle         Code = "INVALID_STYLE"
	ErrCodeInvalidScene         Code = "INVALID_SCENE"
	ErrCodeInvalidItem          Code = "INVALID_ITEM"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsInvalid reports whether err carries any INVALID_* code. The HTTP server
// uses it to answer 400 instead of 500.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfiguration, ErrCodeInvalidStrategy, ErrCodeInvalidAnchor,
		ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidStyle,
		ErrCodeInvalidScene, ErrCodeInvalidItem:
		return true
	}
	return false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
