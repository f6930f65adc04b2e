package taxprovider_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/taxservice/pkg/taxprovider"
)

func TestProviderError_Error(t *testing.T) {
	err := taxprovider.NewProviderError(taxprovider.TaxJar, "HTTP_500", "500: Internal Server Error")
	assert.Equal(t, "taxjar error (HTTP_500): 500: Internal Server Error", err.Error())
}

func TestProviderError_ErrorWithCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := taxprovider.NewProviderError(taxprovider.TaxJar, "REQUEST_FAILED", "rates call failed").WithCause(cause)
	assert.Contains(t, err.Error(), "rates call failed")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestProviderError_Unwrap(t *testing.T) {
	err := taxprovider.NewProviderError(taxprovider.TaxJar, "MALFORMED", "bad payload").
		WithCause(taxprovider.ErrMalformedResponse)
	assert.True(t, errors.Is(err, taxprovider.ErrMalformedResponse))
}

func TestProviderError_Is(t *testing.T) {
	err1 := taxprovider.NewProviderError(taxprovider.TaxJar, "HTTP_404", "not found")
	err2 := taxprovider.NewProviderError("other", "HTTP_404", "different message")
	err3 := taxprovider.NewProviderError(taxprovider.TaxJar, "HTTP_500", "boom")

	assert.True(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err1, err3))
}

func TestStatusCode(t *testing.T) {
	err := taxprovider.NewProviderError(taxprovider.TaxJar, "HTTP_401", "401: Unauthorized").WithStatusCode(401)
	wrapped := fmt.Errorf("calculate tax: %w", err)

	assert.Equal(t, 401, taxprovider.StatusCode(wrapped))
	assert.Equal(t, 0, taxprovider.StatusCode(errors.New("plain")))
}

func TestHTTPCode(t *testing.T) {
	assert.Equal(t, "HTTP_503", taxprovider.HTTPCode(503))
}

func TestErrorCode(t *testing.T) {
	err := taxprovider.NewProviderError(taxprovider.TaxJar, taxprovider.CodeMalformedResponse, "bad payload")

	assert.Equal(t, taxprovider.CodeMalformedResponse, taxprovider.ErrorCode(fmt.Errorf("get rate: %w", err)))
	assert.Equal(t, "unexpected", taxprovider.ErrorCode(errors.New("plain")))
}
