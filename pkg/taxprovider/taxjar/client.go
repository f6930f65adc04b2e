// Package taxjar provides integration with the TaxJar sales tax API.
package taxjar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tournevent/taxservice/pkg/taxprovider"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// Config holds TaxJar configuration.
type Config struct {
	Endpoint string        // Base API URL; the provider is unconfigured when empty
	Key      string        // Bearer token, optional
	Timeout  time.Duration // HTTP timeout, defaults to 30s
	UseMock  bool          // When true, uses mock API client
}

// Client is the TaxJar tax provider.
// It implements the taxprovider.Provider interface and delegates
// API calls to the underlying APIClient (mock or HTTP).
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new TaxJar client.
// If cfg.UseMock is true, it uses a mock API client. Otherwise it uses the
// real HTTP API client, unless no endpoint is configured, in which case
// every lookup returns no data.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	switch {
	case cfg.UseMock:
		apiClient = NewMockAPIClient()
	case cfg.Endpoint == "":
		logger.Warn("TaxJar API endpoint is not configured")
	default:
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.Endpoint,
			APIKey:  cfg.Key,
			Timeout: cfg.Timeout,
		})
	}

	return NewWithAPIClient(cfg, apiClient, logger, tracer)
}

// NewWithAPIClient creates a new TaxJar client with a custom API client.
// A nil apiClient yields an unconfigured provider.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("taxjar")
	}
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Type returns the provider type tag.
func (c *Client) Type() taxprovider.ProviderType {
	return taxprovider.TaxJar
}

// Configured reports whether the client can reach an API.
func (c *Client) Configured() bool {
	return c.apiClient != nil
}

// CalculateTax returns the tax to collect from TaxJar.
func (c *Client) CalculateTax(ctx context.Context, req *taxprovider.CalculateTaxRequest) (*taxprovider.TaxData, error) {
	if c.apiClient == nil {
		return nil, nil
	}

	ctx, span := c.tracer.Start(ctx, "taxjar.CalculateTax", trace.WithAttributes(
		attribute.String("tax.state", req.State),
		attribute.String("tax.zip", req.ZipPostalCode),
	))
	defer span.End()

	c.logger.Ctx(ctx).Debug("Calculating TaxJar tax",
		zap.String("state", req.State),
		zap.String("zip", req.ZipPostalCode),
	)

	apiResp, err := c.apiClient.CalculateTax(ctx, taxRequestToAPI(req))
	if err != nil {
		return nil, c.fail(ctx, span, "calculate tax", err)
	}

	data, err := taxResponseToModel(apiResp)
	if err != nil {
		return nil, c.fail(ctx, span, "calculate tax", err)
	}
	return data, nil
}

// GetRate returns the rates for a location from TaxJar.
func (c *Client) GetRate(ctx context.Context, req *taxprovider.GetRateRequest) (*taxprovider.TaxRateData, error) {
	if c.apiClient == nil {
		return nil, nil
	}

	ctx, span := c.tracer.Start(ctx, "taxjar.GetRate", trace.WithAttributes(
		attribute.String("tax.zip", req.ZipPostalCode),
	))
	defer span.End()

	c.logger.Ctx(ctx).Debug("Getting TaxJar rate", zap.String("zip", req.ZipPostalCode))

	apiResp, err := c.apiClient.GetRate(ctx, req.ZipPostalCode)
	if err != nil {
		return nil, c.fail(ctx, span, "get rate", err)
	}

	data, err := rateResponseToModel(apiResp)
	if err != nil {
		return nil, c.fail(ctx, span, "get rate", err)
	}
	return data, nil
}

// fail converts err into a ProviderError and records it on the span.
func (c *Client) fail(ctx context.Context, span trace.Span, op string, err error) error {
	providerErr := toProviderError(op, err)

	span.RecordError(providerErr)
	span.SetStatus(codes.Error, providerErr.Code)
	c.logger.Ctx(ctx).Error("TaxJar API error",
		zap.String("operation", op),
		zap.Int("status_code", providerErr.StatusCode),
		zap.Error(err),
	)
	return providerErr
}

func toProviderError(op string, err error) *taxprovider.ProviderError {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return taxprovider.NewProviderError(taxprovider.TaxJar, taxprovider.HTTPCode(apiErr.StatusCode), op+" failed").
			WithStatusCode(apiErr.StatusCode).
			WithCause(err)
	case errors.Is(err, taxprovider.ErrMalformedResponse):
		return taxprovider.NewProviderError(taxprovider.TaxJar, taxprovider.CodeMalformedResponse, op+" failed").
			WithCause(err)
	default:
		return taxprovider.NewProviderError(taxprovider.TaxJar, taxprovider.CodeRequestFailed, op+" failed").
			WithCause(fmt.Errorf("%w: %w", taxprovider.ErrRequestFailed, err))
	}
}

// ============================================================================
// Conversion helpers
// ============================================================================

func taxRequestToAPI(req *taxprovider.CalculateTaxRequest) *TaxRequest {
	amount, _ := req.TaxableAmount.Float64()
	return NewTaxRequest(amount, req.State, req.ZipPostalCode)
}

func taxResponseToModel(resp *TaxResponse) (*taxprovider.TaxData, error) {
	if resp == nil || resp.Tax == nil {
		return nil, fmt.Errorf("%w: missing tax", taxprovider.ErrMalformedResponse)
	}

	totalTax, err := parseDecimal("amount_to_collect", resp.Tax.AmountToCollect.String())
	if err != nil {
		return nil, err
	}
	return &taxprovider.TaxData{TotalTax: totalTax}, nil
}

func rateResponseToModel(resp *RateResponse) (*taxprovider.TaxRateData, error) {
	if resp == nil || resp.Rate == nil {
		return nil, fmt.Errorf("%w: missing rate", taxprovider.ErrMalformedResponse)
	}

	r := resp.Rate
	cityRate, err := parseDecimal("city_rate", r.CityRate)
	if err != nil {
		return nil, err
	}
	countyRate, err := parseDecimal("county_rate", r.CountyRate)
	if err != nil {
		return nil, err
	}
	stateRate, err := parseDecimal("state_rate", r.StateRate)
	if err != nil {
		return nil, err
	}
	combinedRate, err := parseDecimal("combined_rate", r.CombinedRate)
	if err != nil {
		return nil, err
	}

	return &taxprovider.TaxRateData{
		CityRate:   cityRate,
		CountyRate: countyRate,
		StateRate:  stateRate,
		TotalRate:  combinedRate,
	}, nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q: %v", taxprovider.ErrMalformedResponse, field, value, err)
	}
	return d, nil
}

var _ taxprovider.Provider = (*Client)(nil)
