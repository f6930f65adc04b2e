package taxjar

import (
	"context"
	"encoding/json"
	"fmt"
)

// APIClient defines the interface for TaxJar API operations.
// HTTPAPIClient talks to the real API; MockAPIClient is used in tests and
// when the service runs without TaxJar credentials.
type APIClient interface {
	// CalculateTax calls POST taxes.
	CalculateTax(ctx context.Context, req *TaxRequest) (*TaxResponse, error)

	// GetRate calls GET rates/{zip}.
	GetRate(ctx context.Context, zipPostalCode string) (*RateResponse, error)
}

// ============================================================================
// API Request/Response Types (match TaxJar v2 sales tax API)
// ============================================================================

// TaxRequest is the body of POST taxes.
// Origin and destination are always the same location and shipping is
// always zero.
type TaxRequest struct {
	Amount    float64 `json:"amount"`
	ToState   string  `json:"to_state"`
	ToZip     string  `json:"to_zip"`
	FromState string  `json:"from_state"`
	FromZip   string  `json:"from_zip"`
	Shipping  float64 `json:"shipping"`
}

// NewTaxRequest builds a TaxRequest for a sale shipped within one location.
func NewTaxRequest(amount float64, state, zipPostalCode string) *TaxRequest {
	return &TaxRequest{
		Amount:    amount,
		ToState:   state,
		ToZip:     zipPostalCode,
		FromState: state,
		FromZip:   zipPostalCode,
		Shipping:  0,
	}
}

// TaxResponse is the response of POST taxes.
type TaxResponse struct {
	Tax *TaxDetail `json:"tax"`
}

// TaxDetail holds the calculated tax. Only the amount is consumed.
type TaxDetail struct {
	AmountToCollect json.Number `json:"amount_to_collect"`
}

// RateResponse is the response of GET rates/{zip}.
type RateResponse struct {
	Rate *RateDetail `json:"rate"`
}

// RateDetail holds the rates for a location. TaxJar sends them as strings.
type RateDetail struct {
	Zip          string `json:"zip,omitempty"`
	State        string `json:"state,omitempty"`
	CityRate     string `json:"city_rate"`
	CombinedRate string `json:"combined_rate"`
	CountyRate   string `json:"county_rate"`
	StateRate    string `json:"state_rate"`
}

// APIError is returned when TaxJar answers with a non-success status.
type APIError struct {
	StatusCode int
	Status     string // Reason phrase
	Detail     string // Raw response body, never shown to callers
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Status)
}
