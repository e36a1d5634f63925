package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeTransport ErrorType = iota
	ErrorTypeAuth
	ErrorTypeMissingField
	ErrorTypeInvalidInput
	ErrorTypeDecode
	ErrorTypeNotify
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeTransport:
		return "transport"
	case ErrorTypeAuth:
		return "auth"
	case ErrorTypeMissingField:
		return "missing_field"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypeDecode:
		return "decode"
	case ErrorTypeNotify:
		return "notify"
	default:
		return "unknown"
	}
}

// SyncError represents a structured application error
type SyncError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *SyncError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *SyncError) Is(target error) bool {
	if syncErr, ok := target.(*SyncError); ok {
		return e.Type == syncErr.Type && e.Code == syncErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *SyncError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext adds context information to the error
func (e *SyncError) WithContext(key string, value interface{}) *SyncError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves context information from the error
func (e *SyncError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}
