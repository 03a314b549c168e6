package ir

import (
	"errors"
	"fmt"
)

// Error is a structured failure reported by the sequence core.
//
// Every failure is terminal for the run. The command layer turns the code
// into a message and a process exit status; the core never prints.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Input is the offending literal, if any.
	Input string
}

// ErrorCode categorizes sequence errors.
type ErrorCode string

const (
	// ErrCodeZeroIncrement indicates the increment parses to zero.
	ErrCodeZeroIncrement ErrorCode = "ZERO_INCREMENT"

	// ErrCodeInvalidNumeral indicates a Roman numeral is not in canonical form.
	ErrCodeInvalidNumeral ErrorCode = "INVALID_NUMERAL"

	// ErrCodeOutOfRange indicates a value cannot be represented (Roman 1..3999, int64).
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"

	// ErrCodeTypeMismatch indicates a bound or increment is not valid for the notation.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeInvalidFormat indicates a numeric format string cannot be applied.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// ErrCodeInvalidPad indicates a pad string is not exactly one character.
	ErrCodeInvalidPad ErrorCode = "INVALID_PAD"

	// ErrCodeUsage indicates the wrong number or shape of arguments.
	ErrCodeUsage ErrorCode = "USAGE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (input=%q)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the ErrorCode carried by err, or "" if err is not an *Error.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// Errorf creates an *Error with a formatted message.
func Errorf(code ErrorCode, input, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Input:   input,
	}
}
