package taxjar

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// mockCombinedRate is the rate the mock applies to every calculation.
var mockCombinedRate = decimal.RequireFromString("0.0725")

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCalculateTax func(ctx context.Context, req *TaxRequest) (*TaxResponse, error)
	OnGetRate      func(ctx context.Context, zipPostalCode string) (*RateResponse, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// CalculateTax returns a mock tax calculation.
func (m *MockAPIClient) CalculateTax(ctx context.Context, req *TaxRequest) (*TaxResponse, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}

	if m.OnCalculateTax != nil {
		return m.OnCalculateTax(ctx, req)
	}

	amount := decimal.NewFromFloat(req.Amount).Mul(mockCombinedRate).Round(2)
	return &TaxResponse{
		Tax: &TaxDetail{AmountToCollect: json.Number(amount.String())},
	}, nil
}

// GetRate returns mock rates.
func (m *MockAPIClient) GetRate(ctx context.Context, zipPostalCode string) (*RateResponse, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}

	if m.OnGetRate != nil {
		return m.OnGetRate(ctx, zipPostalCode)
	}

	return &RateResponse{
		Rate: &RateDetail{
			Zip:          zipPostalCode,
			CityRate:     "0.01",
			CountyRate:   "0.0025",
			StateRate:    "0.06",
			CombinedRate: mockCombinedRate.String(),
		},
	}, nil
}

func (m *MockAPIClient) simulate(ctx context.Context) error {
	if m.SimulateLatency > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.SimulateLatency):
		}
	}

	if m.SimulateErrors {
		return &APIError{
			StatusCode: http.StatusInternalServerError,
			Status:     http.StatusText(http.StatusInternalServerError),
		}
	}
	return nil
}

// Ensure MockAPIClient implements APIClient interface
var _ APIClient = (*MockAPIClient)(nil)
