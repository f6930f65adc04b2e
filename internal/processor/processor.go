// Package processor implements the tax service's request-processing core:
// it selects the active provider, calls it, and normalizes the result into
// an Outcome.
package processor

import (
	"context"

	"github.com/tournevent/taxservice/pkg/taxprovider"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ActiveProvider is the provider type every request is served by.
const ActiveProvider = taxprovider.TaxJar

//go:generate mockgen -destination=../server/mock_service_test.go -package=server_test . Service

// Service is the processor contract consumed by the transport layer.
type Service interface {
	CalculateTax(ctx context.Context, req *taxprovider.CalculateTaxRequest) (Outcome, error)
	GetRate(ctx context.Context, req *taxprovider.GetRateRequest) (Outcome, error)
}

// Processor routes requests to the configured provider.
// It keeps no state between calls.
type Processor struct {
	registry *taxprovider.Registry
	logger   *otelzap.Logger
}

// New creates a processor over registry. A nil registry is treated as empty.
func New(registry *taxprovider.Registry, logger *otelzap.Logger) *Processor {
	return &Processor{
		registry: registry,
		logger:   logger,
	}
}

// CalculateTax asks the active provider for the tax on the request's amount.
// Provider errors are returned as-is.
func (p *Processor) CalculateTax(ctx context.Context, req *taxprovider.CalculateTaxRequest) (Outcome, error) {
	provider, ok := p.selectProvider(ctx)
	if !ok {
		return Failed(ErrProviderUnavailable), nil
	}

	data, err := provider.CalculateTax(ctx, req)
	if err != nil {
		return Outcome{}, err
	}
	if data == nil {
		return Succeeded(NoData{}), nil
	}

	return Succeeded(CalculateTaxResponse{TotalTax: data.TotalTax}), nil
}

// GetRate asks the active provider for the rates of the request's location.
// Provider errors are returned as-is.
func (p *Processor) GetRate(ctx context.Context, req *taxprovider.GetRateRequest) (Outcome, error) {
	provider, ok := p.selectProvider(ctx)
	if !ok {
		return Failed(ErrProviderUnavailable), nil
	}

	data, err := provider.GetRate(ctx, req)
	if err != nil {
		return Outcome{}, err
	}
	if data == nil {
		return Succeeded(NoData{}), nil
	}

	return Succeeded(GetRateResponse{
		CityRate:   data.CityRate,
		CountyRate: data.CountyRate,
		StateRate:  data.StateRate,
		TotalRate:  data.TotalRate,
	}), nil
}

func (p *Processor) selectProvider(ctx context.Context) (taxprovider.Provider, bool) {
	provider, ok := p.registry.Select(ActiveProvider)
	if !ok {
		p.logger.Ctx(ctx).Warn("Valid tax provider is not configured",
			zap.String("provider_type", string(ActiveProvider)),
			zap.Int("registered", p.registry.Count()),
		)
	}
	return provider, ok
}

var _ Service = (*Processor)(nil)
