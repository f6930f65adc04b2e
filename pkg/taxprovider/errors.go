package taxprovider

import (
	"errors"
	"fmt"
)

// Codes carried by ProviderError besides the HTTP_<status> family.
const (
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeRequestFailed     = "REQUEST_FAILED"
)

// HTTPCode is the ProviderError code for a non-2xx answer with the given status.
func HTTPCode(status int) string {
	return fmt.Sprintf("HTTP_%d", status)
}

// ProviderError represents an error from a tax-data provider.
// Code is CodeMalformedResponse, CodeRequestFailed or an HTTPCode.
type ProviderError struct {
	Provider   ProviderType
	Code       string
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Provider, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Provider, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for ProviderError.
func (e *ProviderError) Is(target error) bool {
	t, ok := target.(*ProviderError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewProviderError creates a new ProviderError.
func NewProviderError(provider ProviderType, code, message string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Code:     code,
		Message:  message,
	}
}

// WithCause adds a cause to the error.
func (e *ProviderError) WithCause(err error) *ProviderError {
	e.Cause = err
	return e
}

// WithStatusCode adds an HTTP status code to the error.
func (e *ProviderError) WithStatusCode(code int) *ProviderError {
	e.StatusCode = code
	return e
}

var (
	// ErrMalformedResponse indicates the provider answered with a payload
	// that is missing fields or carries values that are not numbers.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrRequestFailed indicates the provider call could not be completed.
	ErrRequestFailed = errors.New("provider request failed")
)

// ErrorCode returns the ProviderError code carried by err, or "unexpected"
// when err did not come from a provider.
func ErrorCode(err error) string {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Code
	}
	return "unexpected"
}

// StatusCode returns the remote HTTP status carried by err, or 0 when err
// did not come from a completed remote call.
func StatusCode(err error) int {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.StatusCode
	}
	return 0
}
