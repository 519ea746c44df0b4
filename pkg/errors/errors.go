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

	// Configuration errors. These indicate a deployment or programming
	// defect and should abort the calling operation.
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateParse    ErrorCode = "TEMPLATE_PARSE"
	ErrTemplateInvalid  ErrorCode = "TEMPLATE_INVALID"

	// Storage errors
	ErrStorageList   ErrorCode = "STORAGE_LIST"
	ErrStorageAccess ErrorCode = "STORAGE_ACCESS"

	// Validation errors. These describe bad model layouts and are
	// surfaced to the user as diagnostics, not aborts.
	ErrModelPathEmpty      ErrorCode = "MODEL_PATH_EMPTY"
	ErrUnexpectedPath      ErrorCode = "UNEXPECTED_PATH"
	ErrPlaceholderNotFound ErrorCode = "PLACEHOLDER_NOT_FOUND"
	ErrTooManyAppearances  ErrorCode = "TOO_MANY_APPEARANCES"
	ErrSingleConflict      ErrorCode = "SINGLE_CONFLICT"
	ErrExclusiveConflict   ErrorCode = "EXCLUSIVE_CONFLICT"
	ErrNoSubstructure      ErrorCode = "NO_SUBSTRUCTURE"
)

// validationCodes is the set of codes that describe a bad model layout
// rather than a defective deployment.
var validationCodes = map[ErrorCode]bool{
	ErrModelPathEmpty:      true,
	ErrUnexpectedPath:      true,
	ErrPlaceholderNotFound: true,
	ErrTooManyAppearances:  true,
	ErrSingleConflict:      true,
	ErrExclusiveConflict:   true,
	ErrNoSubstructure:      true,
}

// ShapeError represents a structured error with code and details
type ShapeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface. A wrapped chain renders
// outer-to-inner, so recursion context reads from the model root down to
// the offending path.
func (e *ShapeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShapeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShapeError) Is(target error) bool {
	var targetErr *ShapeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShapeError with the given code and message
func New(code ErrorCode, message string) *ShapeError {
	return &ShapeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShapeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShapeError {
	return &ShapeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShapeError
func Wrap(err error, code ErrorCode, message string) *ShapeError {
	if err == nil {
		return nil
	}
	return &ShapeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShapeError {
	if err == nil {
		return nil
	}
	return &ShapeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShapeError) WithDetail(key string, value interface{}) *ShapeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		return shapeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShapeError
func GetErrorCode(err error) ErrorCode {
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		return shapeErr.Code
	}
	return ErrUnknown
}

// RootCode walks the wrap chain and returns the innermost ShapeError code.
// The engine wraps validation failures with context at every recursion
// unwind, so the outermost code is context and the innermost is the cause.
func RootCode(err error) ErrorCode {
	code := ErrUnknown
	for err != nil {
		var shapeErr *ShapeError
		if !errors.As(err, &shapeErr) {
			break
		}
		code = shapeErr.Code
		err = shapeErr.Wrapped
	}
	return code
}

// IsValidation reports whether the error describes a bad model layout,
// as opposed to a configuration or storage defect.
func IsValidation(err error) bool {
	return validationCodes[RootCode(err)]
}

// GetErrorDetails returns the details from an error, or nil if not a ShapeError
func GetErrorDetails(err error) map[string]interface{} {
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		return shapeErr.Details
	}
	return nil
}
