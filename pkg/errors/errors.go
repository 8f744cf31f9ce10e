// Package errors provides the structured errors mazewalk returns across
// package boundaries.
//
// Each [Error] carries a [Code]. The CLI prints [UserMessage] and the HTTP
// server turns the code into a status: INVALID_STATE is a conflict with the
// session's current mode, FILE_NOT_FOUND a missing config file, every other
// INVALID_* code a bad request (see [IsValidation]), and the rest internal.
//
//	_, err := maze.New(0, 3)
//	errors.GetCode(err)      // INVALID_DIMENSIONS
//	errors.IsValidation(err) // true
//	errors.UserMessage(err)  // "grid 0x3 must be at least 1x1"
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Rejected input: grid shape, biases, directions, formats, config.
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidBias       Code = "INVALID_BIAS"
	ErrCodeInvalidDirection  Code = "INVALID_DIRECTION"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"

	// A command the session's mode does not allow.
	ErrCodeInvalidState Code = "INVALID_STATE"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage returns the message without the code prefix, or err.Error()
// for uncoded errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err was caused by bad input rather than by
// the session's mode or an internal failure.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidDimensions, ErrCodeInvalidBias,
		ErrCodeInvalidDirection, ErrCodeInvalidFormat, ErrCodeInvalidConfig:
		return true
	}
	return false
}
