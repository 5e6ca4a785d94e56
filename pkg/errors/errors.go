package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Action errors
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"
	ErrBundle        ErrorCode = "BUNDLE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// DenotagError represents a structured error with code and details
type DenotagError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DenotagError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DenotagError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DenotagError) Is(target error) bool {
	var targetErr *DenotagError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DenotagError with the given code and message
func New(code ErrorCode, message string) *DenotagError {
	return &DenotagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DenotagError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DenotagError {
	return &DenotagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DenotagError
func Wrap(err error, code ErrorCode, message string) *DenotagError {
	if err == nil {
		return nil
	}
	return &DenotagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DenotagError {
	if err == nil {
		return nil
	}
	return &DenotagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DenotagError) WithDetail(key string, value interface{}) *DenotagError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tagErr *DenotagError
	if errors.As(err, &tagErr) {
		return tagErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DenotagError
func GetErrorCode(err error) ErrorCode {
	var tagErr *DenotagError
	if errors.As(err, &tagErr) {
		return tagErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DenotagError
func GetErrorDetails(err error) map[string]interface{} {
	var tagErr *DenotagError
	if errors.As(err, &tagErr) {
		return tagErr.Details
	}
	return nil
}
