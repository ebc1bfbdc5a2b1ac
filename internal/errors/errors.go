// Package errors provides coded error types for column capacity calculations.
//
// Every error raised while validating inputs or building a section carries a
// machine-readable Code and, where it applies, the input Field that caused it
// so a caller can point the user at the value to correct.
//
//	err := errors.New(errors.ErrCodeUnknownRebarSize, "bar", "unknown rebar size %q", "#12")
//	if errors.Is(err, errors.ErrCodeUnknownRebarSize) {
//	    // Handle catalog miss
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
	ErrCodeInvalidInput               Code = "INVALID_INPUT"
	ErrCodeInvalidReinforcementLayout Code = "INVALID_REINFORCEMENT_LAYOUT"
	ErrCodeUnknownRebarSize           Code = "UNKNOWN_REBAR_SIZE"
	ErrCodeDegenerateGeometry         Code = "DEGENERATE_GEOMETRY"
	ErrCodeAmbiguousLayer             Code = "AMBIGUOUS_LAYER"
	ErrCodeUnknownLayer               Code = "UNKNOWN_LAYER"
	ErrCodeDegenerateEnvelope         Code = "DEGENERATE_ENVELOPE"
	ErrCodeInvalidConfig              Code = "INVALID_CONFIG"
)

// Error is a structured error with a code, the offending field and an
// optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Field   string // Input field that caused the error (optional)
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code, field and formatted message.
func New(code Code, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, field string, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Field:   field,
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
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetField extracts the offending input field from an error, if available.
func GetField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
