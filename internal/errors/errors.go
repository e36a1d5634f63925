package errors

import (
	"errors"
	"fmt"
)

// NewTransportError creates a new transport error for a non-2xx API response
func NewTransportError(service string, status int, body string) *SyncError {
	return &SyncError{
		Type:    ErrorTypeTransport,
		Message: fmt.Sprintf("%s API returned status %d", service, status),
		Code:    "TRANSPORT_FAILED",
		Context: map[string]interface{}{
			"service": service,
			"status":  status,
			"body":    body,
		},
	}
}

// NewRequestError creates a new transport error for a request that never
// produced a response (connection refused, timeout, DNS failure)
func NewRequestError(service string, cause error) *SyncError {
	return &SyncError{
		Type:    ErrorTypeTransport,
		Message: fmt.Sprintf("%s API request failed", service),
		Code:    "REQUEST_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"service": service,
		},
	}
}

// NewAuthError creates a new authentication error
func NewAuthError(service string, status int) *SyncError {
	return &SyncError{
		Type:    ErrorTypeAuth,
		Message: fmt.Sprintf("%s API rejected credentials with status %d", service, status),
		Code:    "AUTH_REJECTED",
		Context: map[string]interface{}{
			"service": service,
			"status":  status,
		},
	}
}

// NewMissingFieldError creates a new missing field error
func NewMissingFieldError(field string) *SyncError {
	return &SyncError{
		Type:    ErrorTypeMissingField,
		Message: fmt.Sprintf("required field is missing: %s", field),
		Code:    "MISSING_FIELD",
		Context: map[string]interface{}{
			"field": field,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *SyncError {
	return &SyncError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewDecodeError creates a new decode error for an unparseable API response
func NewDecodeError(what string, cause error) *SyncError {
	return &SyncError{
		Type:    ErrorTypeDecode,
		Message: fmt.Sprintf("failed to decode %s", what),
		Code:    "DECODE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"what": what,
		},
	}
}

// NewNotifyError creates a new notification delivery error
func NewNotifyError(cause error) *SyncError {
	return &SyncError{
		Type:    ErrorTypeNotify,
		Message: "failed to deliver notification",
		Code:    "NOTIFY_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *SyncError {
	return &SyncError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsSyncError checks if the error is a SyncError
func IsSyncError(err error) bool {
	var syncErr *SyncError
	return errors.As(err, &syncErr)
}

// AsSyncError converts an error to a SyncError if possible
func AsSyncError(err error) (*SyncError, bool) {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if syncErr, ok := AsSyncError(err); ok {
		return syncErr.IsType(errorType)
	}
	return false
}
