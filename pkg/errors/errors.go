// Package errors provides the coded error type shared by every codec package.
//
// Callers test for a condition by code rather than by message, so messages
// can change without breaking tests or the CLI's diagnostics.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotInteractive ErrorCode = "NOT_INTERACTIVE"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Template resolution errors
	ErrOutputNameInvalid     ErrorCode = "OUTPUT_NAME_INVALID"
	ErrTemplateNotFound      ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateNotAccessible ErrorCode = "TEMPLATE_NOT_ACCESSIBLE"
	ErrTemplateNotValid      ErrorCode = "TEMPLATE_NOT_VALID"
	ErrUnsupportedEntryKind  ErrorCode = "UNSUPPORTED_ENTRY_KIND"

	// Substitution errors
	ErrVariableNotFound ErrorCode = "VARIABLE_NOT_FOUND"
	ErrPipeNotFound     ErrorCode = "PIPE_NOT_FOUND"

	// FileSystem errors
	ErrCouldNotRead  ErrorCode = "COULD_NOT_READ"
	ErrCouldNotWrite ErrorCode = "COULD_NOT_WRITE"
	ErrNotOpenable   ErrorCode = "NOT_OPENABLE"
)

// Detail keys used across packages.
const (
	DetailPath     = "path"
	DetailSource   = "source"
	DetailLine     = "line"
	DetailStart    = "start"
	DetailEnd      = "end"
	DetailText     = "text"
	DetailVariable = "variable"
	DetailPipe     = "pipe"
)

// CodecError represents a structured error with code and details
type CodecError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CodecError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CodecError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CodecError with the same code.
func (e *CodecError) Is(target error) bool {
	var targetErr *CodecError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CodecError with the given code and message
func New(code ErrorCode, message string) *CodecError {
	return &CodecError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CodecError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CodecError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a CodecError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *CodecError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CodecError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CodecError) WithDetail(key string, value interface{}) *CodecError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CodecError) WithDetails(details map[string]interface{}) *CodecError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CodecError
func GetErrorCode(err error) ErrorCode {
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CodecError
func GetErrorDetails(err error) map[string]interface{} {
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Details
	}
	return nil
}

// DetailString returns a string detail, or "" when absent.
func DetailString(err error, key string) string {
	if s, ok := GetErrorDetails(err)[key].(string); ok {
		return s
	}
	return ""
}
