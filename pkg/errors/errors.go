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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Format detection errors
	ErrFormatParse  ErrorCode = "FORMAT_PARSE"
	ErrFormatEncode ErrorCode = "FORMAT_ENCODE"

	// Terminal I/O errors
	ErrInputRead   ErrorCode = "INPUT_READ"
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
	ErrClipboard   ErrorCode = "CLIPBOARD"

	// Call site resolution
	ErrSourceRead ErrorCode = "SOURCE_READ"
)

// PrintBreakError represents a structured error with code and details
type PrintBreakError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PrintBreakError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PrintBreakError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PrintBreakError) Is(target error) bool {
	var targetErr *PrintBreakError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PrintBreakError with the given code and message
func New(code ErrorCode, message string) *PrintBreakError {
	return &PrintBreakError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PrintBreakError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PrintBreakError {
	return &PrintBreakError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PrintBreakError
func Wrap(err error, code ErrorCode, message string) *PrintBreakError {
	if err == nil {
		return nil
	}
	return &PrintBreakError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PrintBreakError {
	if err == nil {
		return nil
	}
	return &PrintBreakError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PrintBreakError) WithDetail(key string, value interface{}) *PrintBreakError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pbErr *PrintBreakError
	if errors.As(err, &pbErr) {
		return pbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PrintBreakError
func GetErrorCode(err error) ErrorCode {
	var pbErr *PrintBreakError
	if errors.As(err, &pbErr) {
		return pbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PrintBreakError
func GetErrorDetails(err error) map[string]interface{} {
	var pbErr *PrintBreakError
	if errors.As(err, &pbErr) {
		return pbErr.Details
	}
	return nil
}
