// Package taxprovider provides an abstraction layer for external tax-data providers.
package taxprovider

import (
	"context"
)

// ProviderType identifies a provider implementation. It is used only for
// selection; adapters never branch on it.
type ProviderType string

const (
	TaxJar ProviderType = "taxjar"
)

// Provider defines the interface that all tax-data providers must implement.
//
// Both lookups return (nil, nil) when the provider is not configured. That is
// a soft "not available" signal and is distinct from a failed remote call,
// which is always reported as an error.
type Provider interface {
	// Type returns the provider's type tag.
	Type() ProviderType

	// CalculateTax returns the tax to collect for a taxable amount.
	CalculateTax(ctx context.Context, req *CalculateTaxRequest) (*TaxData, error)

	// GetRate returns the tax rates for a zip/postal code.
	GetRate(ctx context.Context, req *GetRateRequest) (*TaxRateData, error)
}
