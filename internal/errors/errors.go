package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode represents application error codes
type ErrorCode int

const (
	// Client errors (4xx)
	ErrCodeInvalidInput ErrorCode = 400 // empty/blank text or key after normalization
	ErrCodeUnauthorized ErrorCode = 401
	ErrCodeNotFound     ErrorCode = 404
	ErrCodeInvalidKey   ErrorCode = 422 // wrong key length/shape, non-invertible matrix
	ErrCodeFormat       ErrorCode = 423 // ciphertext not a block multiple, non-hex stream input

	// Server errors (5xx)
	ErrCodeInternal ErrorCode = 500
)

// AppError represents a structured application error
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewInvalidInput creates an input validation error
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:       ErrCodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidInputf creates an input validation error with formatting
func NewInvalidInputf(format string, args ...interface{}) *AppError {
	return NewInvalidInput(fmt.Sprintf(format, args...))
}

// NewInvalidKey creates a key-shape error
func NewInvalidKey(message string) *AppError {
	return &AppError{
		Code:       ErrCodeInvalidKey,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NewInvalidKeyf creates a key-shape error with formatting
func NewInvalidKeyf(format string, args ...interface{}) *AppError {
	return NewInvalidKey(fmt.Sprintf(format, args...))
}

// NewFormatError creates a ciphertext format error
func NewFormatError(message string) *AppError {
	return &AppError{
		Code:       ErrCodeFormat,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewFormatErrorf creates a ciphertext format error with formatting
func NewFormatErrorf(format string, args ...interface{}) *AppError {
	return NewFormatError(fmt.Sprintf(format, args...))
}

// NewUnauthorized creates an unauthorized error
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       ErrCodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewNotFound creates a not found error
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:       ErrCodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewInternal creates an internal server error
func NewInternal(message string) *AppError {
	return &AppError{
		Code:       ErrCodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternalWithCause creates an internal server error with cause
func NewInternalWithCause(message string, cause error) *AppError {
	return &AppError{
		Code:       ErrCodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ToHTTPStatus converts an error to HTTP status code
func ToHTTPStatus(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// ToJSON converts an error to JSON bytes
func ToJSON(err error) []byte {
	if appErr, ok := err.(*AppError); ok {
		data, _ := json.Marshal(map[string]interface{}{
			"code": appErr.Code,
			"msg":  appErr.Message,
		})
		return data
	}
	data, _ := json.Marshal(map[string]interface{}{
		"code": ErrCodeInternal,
		"msg":  err.Error(),
	})
	return data
}
