package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
	CodeValidation      ErrorCode = "VALIDATION_ERROR"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeUpstream        ErrorCode = "UPSTREAM_ERROR"
	CodeUpstreamTimeout ErrorCode = "UPSTREAM_TIMEOUT"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches a key/value pair that is surfaced in API error details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError reports bad or missing user input for field.
func NewValidationError(field, message string) *DomainError {
	return NewError(CodeValidation, message, nil).WithContext("field", field)
}

// NewUpstreamError reports a non-success status or a malformed payload from
// the Vision service. status is 0 when no HTTP response was received.
func NewUpstreamError(operation string, status int, cause error) *DomainError {
	msg := fmt.Sprintf("vision service %s failed", operation)
	if status != 0 {
		msg = fmt.Sprintf("vision service %s failed with HTTP %d", operation, status)
	}
	err := NewError(CodeUpstream, msg, cause).WithContext("operation", operation)
	if status != 0 {
		err.WithContext("status", status)
	}
	return err
}

// NewTimeoutError reports that the Vision service did not answer in time.
func NewTimeoutError(operation string, cause error) *DomainError {
	return NewError(CodeUpstreamTimeout, fmt.Sprintf("vision service %s timed out", operation), cause).
		WithContext("operation", operation)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// CodeOf returns the code of the first DomainError in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

func IsValidation(err error) bool {
	return err != nil && CodeOf(err) == CodeValidation
}

func IsTimeout(err error) bool {
	return err != nil && CodeOf(err) == CodeUpstreamTimeout
}

// IsUpstream reports whether err came from the Vision service. Timeouts count
// as upstream failures.
func IsUpstream(err error) bool {
	if err == nil {
		return false
	}
	code := CodeOf(err)
	return code == CodeUpstream || code == CodeUpstreamTimeout
}
