// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package errors provides standardized error types and handling for the application
package errors

import (
	"errors"
	"fmt"
)

// Standard error types that can be used across the application
var (
	ErrNotFound        = errors.New("file not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrOperationFailed = errors.New("operation failed")
	ErrCancelled       = errors.New("operation was cancelled")
)

// ErrorCode represents specific error codes for better error handling
type ErrorCode string

// Standard error codes
const (
	CodeNotFound        ErrorCode = "not_found"
	CodeInvalidInput    ErrorCode = "invalid_input"
	CodeOperationFailed ErrorCode = "operation_failed"
	CodeCancelled       ErrorCode = "cancelled"
	CodeReadError       ErrorCode = "read_error"
	CodeWriteError      ErrorCode = "write_error"
	CodeWatchError      ErrorCode = "watch_error"
)

// AppError represents an application-specific error with context
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

// Error implements the error interface for AppError
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface to support errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new AppError with the given code and message
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error in an AppError
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound creates an error for a target file that does not exist
func NotFound(path string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("file '%s' not found", path),
		Err:     ErrNotFound,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// InvalidInput creates a new invalid input error
func InvalidInput(details string) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s", details),
		Err:     ErrInvalidInput,
	}
}

// OperationFailed creates a new operation failed error
func OperationFailed(operation string, err error) *AppError {
	return &AppError{
		Code:    CodeOperationFailed,
		Message: fmt.Sprintf("Operation '%s' failed", operation),
		Err:     err,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound) || errors.Is(err, ErrNotFound)
}

// Is checks if the error is of the specified code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
