// Package errors provides structured error types for netgliffy.
//
// Every failure the conversion pipeline can report carries a machine-readable
// [Code] so that the CLI can decide how to present it and tests can assert on
// the failure kind without matching message text.
//
// # Error Codes
//
//   - SOURCE_UNREADABLE: the input inventory could not be opened or parsed as CSV
//   - INVALID_NETWORK_SPEC: an entry's IP or CIDR is not a valid network
//   - EMPTY_RESULT: no entry survived grouping, nothing to draw
//   - OUTPUT_WRITE: the diagram (or preview) could not be written
//   - INVALID_CONFIG: the configuration file or layout settings are invalid
//   - INVALID_INPUT: missing or malformed options
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyResult, "no valid devices in %s", path)
//	if errors.Is(err, errors.ErrCodeEmptyResult) {
//	    // nothing was written
//	}
//
//	err := errors.Wrap(errors.ErrCodeSourceUnreadable, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeSourceUnreadable   Code = "SOURCE_UNREADABLE"
	ErrCodeInvalidNetworkSpec Code = "INVALID_NETWORK_SPEC"
	ErrCodeEmptyResult        Code = "EMPTY_RESULT"
	ErrCodeOutputWrite        Code = "OUTPUT_WRITE"
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
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
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
