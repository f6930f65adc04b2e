package taxjar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/taxservice/pkg/taxprovider"
)

const (
	testKey           = "test-key"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testAPIClient(baseURL, key string) *HTTPAPIClient {
	return NewHTTPAPIClient(HTTPAPIClientConfig{BaseURL: baseURL, APIKey: key})
}

func TestHTTPAPIClient_CalculateTax_WireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/taxes", r.URL.Path)
		assert.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
		assert.Equal(t, contentTypeJSON, r.Header.Get(headerContentType))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 100.0, body["amount"])
		assert.Equal(t, "NE", body["to_state"])
		assert.Equal(t, "HALL", body["to_zip"])
		assert.Equal(t, body["to_state"], body["from_state"])
		assert.Equal(t, body["to_zip"], body["from_zip"])
		assert.Equal(t, 0.0, body["shipping"])
		assert.Len(t, body, 6)

		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"tax":{"order_total_amount":100.0,"amount_to_collect":7.25}}`))
	}))
	defer srv.Close()

	c := testAPIClient(srv.URL+"/v2", testKey)
	resp, err := c.CalculateTax(context.Background(), NewTaxRequest(100, "NE", "HALL"))

	require.NoError(t, err)
	require.NotNil(t, resp.Tax)
	assert.Equal(t, "7.25", resp.Tax.AmountToCollect.String())
}

func TestHTTPAPIClient_GetRate_WireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/rates/68801", r.URL.Path)

		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"rate":{"zip":"68801","city_rate":"0.015","combined_rate":"0.075","county_rate":"0.0","state_rate":"0.055"}}`))
	}))
	defer srv.Close()

	c := testAPIClient(srv.URL+"/v2/", testKey)
	resp, err := c.GetRate(context.Background(), "68801")

	require.NoError(t, err)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, "0.015", resp.Rate.CityRate)
	assert.Equal(t, "0.075", resp.Rate.CombinedRate)
	assert.Equal(t, "0.0", resp.Rate.CountyRate)
	assert.Equal(t, "0.055", resp.Rate.StateRate)
}

func TestHTTPAPIClient_GetRate_EscapesZip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rates/K1A%200B1", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"rate":{}}`))
	}))
	defer srv.Close()

	_, err := testAPIClient(srv.URL, "").GetRate(context.Background(), "K1A 0B1")
	require.NoError(t, err)
}

func TestHTTPAPIClient_NoKey_SendsUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"rate":{}}`))
	}))
	defer srv.Close()

	_, err := testAPIClient(srv.URL, "").GetRate(context.Background(), "68801")
	require.NoError(t, err)
}

func TestHTTPAPIClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":500,"error":"Internal Server Error","detail":"boom"}`))
	}))
	defer srv.Close()

	c := testAPIClient(srv.URL, testKey)

	_, err := c.CalculateTax(context.Background(), NewTaxRequest(10, "NE", "68801"))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "500: Internal Server Error", apiErr.Error())
	assert.Contains(t, apiErr.Detail, "boom")

	_, err = c.GetRate(context.Background(), "68801")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestHTTPAPIClient_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := testAPIClient(srv.URL, testKey)

	_, err := c.GetRate(context.Background(), "68801")
	assert.ErrorIs(t, err, taxprovider.ErrMalformedResponse)

	_, err = c.CalculateTax(context.Background(), NewTaxRequest(100, "NE", "HALL"))
	assert.ErrorIs(t, err, taxprovider.ErrMalformedResponse)
}

func TestHTTPAPIClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rate":{}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testAPIClient(srv.URL, testKey).GetRate(ctx, "68801")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewHTTPAPIClient_AppendsTrailingSlash(t *testing.T) {
	assert.Equal(t, "https://api.taxjar.com/v2/", testAPIClient("https://api.taxjar.com/v2", "").baseURL)
	assert.Equal(t, "https://api.taxjar.com/v2/", testAPIClient("https://api.taxjar.com/v2/", "").baseURL)
}
