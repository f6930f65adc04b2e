// Package mock provides a mock tax provider implementation for testing.
package mock

import (
	"context"
	"sync/atomic"

	"github.com/tournevent/taxservice/pkg/taxprovider"
)

// Client is a mock tax provider for testing. With no hooks set it behaves
// like an unconfigured provider and returns no data.
type Client struct {
	providerType taxprovider.ProviderType

	OnCalculateTax func(ctx context.Context, req *taxprovider.CalculateTaxRequest) (*taxprovider.TaxData, error)
	OnGetRate      func(ctx context.Context, req *taxprovider.GetRateRequest) (*taxprovider.TaxRateData, error)

	calculateCalls atomic.Int64
	rateCalls      atomic.Int64
}

// New creates a new mock provider with the given type tag.
func New(t taxprovider.ProviderType) *Client {
	return &Client{providerType: t}
}

// WithTaxData makes CalculateTax return data.
func (c *Client) WithTaxData(data *taxprovider.TaxData) *Client {
	c.OnCalculateTax = func(context.Context, *taxprovider.CalculateTaxRequest) (*taxprovider.TaxData, error) {
		return data, nil
	}
	return c
}

// WithRateData makes GetRate return data.
func (c *Client) WithRateData(data *taxprovider.TaxRateData) *Client {
	c.OnGetRate = func(context.Context, *taxprovider.GetRateRequest) (*taxprovider.TaxRateData, error) {
		return data, nil
	}
	return c
}

// WithError makes both operations fail with err.
func (c *Client) WithError(err error) *Client {
	c.OnCalculateTax = func(context.Context, *taxprovider.CalculateTaxRequest) (*taxprovider.TaxData, error) {
		return nil, err
	}
	c.OnGetRate = func(context.Context, *taxprovider.GetRateRequest) (*taxprovider.TaxRateData, error) {
		return nil, err
	}
	return c
}

// Type returns the provider type tag.
func (c *Client) Type() taxprovider.ProviderType {
	return c.providerType
}

// CalculateTax returns the configured tax data.
func (c *Client) CalculateTax(ctx context.Context, req *taxprovider.CalculateTaxRequest) (*taxprovider.TaxData, error) {
	c.calculateCalls.Add(1)
	if c.OnCalculateTax != nil {
		return c.OnCalculateTax(ctx, req)
	}
	return nil, nil
}

// GetRate returns the configured rate data.
func (c *Client) GetRate(ctx context.Context, req *taxprovider.GetRateRequest) (*taxprovider.TaxRateData, error) {
	c.rateCalls.Add(1)
	if c.OnGetRate != nil {
		return c.OnGetRate(ctx, req)
	}
	return nil, nil
}

// CalculateTaxCalls returns how many times CalculateTax was invoked.
func (c *Client) CalculateTaxCalls() int {
	return int(c.calculateCalls.Load())
}

// GetRateCalls returns how many times GetRate was invoked.
func (c *Client) GetRateCalls() int {
	return int(c.rateCalls.Load())
}

var _ taxprovider.Provider = (*Client)(nil)
