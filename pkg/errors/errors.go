// Package errors provides structured error types for beaconzone.
//
// Every failure the engine, the record parser or the configuration layer can
// produce carries a machine-readable [Code], so the CLI can map failures to
// messages and callers can branch with [Is] without string matching.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: malformed input, records, queries or configuration
//   - NO_WITNESS, GAP_NOT_FOUND: the engine could not produce an answer
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoWitness, "source %s has no witness", origin)
//	if errors.Is(err, errors.ErrCodeNoWitness) {
//	    // Handle missing witness
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "read %s", path)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidRecord Code = "INVALID_RECORD"
	ErrCodeInvalidQuery  Code = "INVALID_QUERY"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Engine errors
	ErrCodeNoWitness     Code = "NO_WITNESS"
	ErrCodeInvalidRadius Code = "INVALID_RADIUS"
	ErrCodeGapNotFound   Code = "GAP_NOT_FOUND"

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
// It unwraps the error chain looking for an *Error or *RecordError with a
// matching code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var re *RecordError
	if errors.As(err, &re) {
		return re.Code()
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

// RecordError reports an input line that could not be parsed into a record.
type RecordError struct {
	Line int    // 1-based line number
	Text string // Offending line, trimmed
	Err  error  // Parse failure (optional)
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: invalid record %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: invalid record %q", e.Line, e.Text)
}

// Unwrap returns the underlying parse failure.
func (e *RecordError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *RecordError) Code() Code {
	return ErrCodeInvalidRecord
}
