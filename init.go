package main

import (
	"context"

	"github.com/tournevent/taxservice/internal/config"
	"github.com/tournevent/taxservice/internal/telemetry"
	"github.com/tournevent/taxservice/pkg/taxprovider"
	"github.com/tournevent/taxservice/pkg/taxprovider/taxjar"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func loadConfig(envFile string) (*config.Config, error) {
	return config.Load(envFile)
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

// initTracer returns the global (no-op) tracer when OTEL export is disabled.
func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return otel.Tracer(cfg.ServiceName), func(context.Context) error { return nil }, nil
	}
	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
}

func initProviderRegistry(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer) *taxprovider.Registry {
	registry := taxprovider.NewRegistry()

	if cfg.TaxJarEnabled {
		tj := taxjar.New(taxjar.Config{
			Endpoint: cfg.TaxJarEndpoint,
			Key:      cfg.TaxJarKey,
			Timeout:  cfg.TaxJarTimeout,
			UseMock:  cfg.TaxJarUseMock,
		}, logger, tracer)
		registry.Register(tj)
	}

	return registry
}

func configFields(cfg *config.Config) []zap.Field {
	fields := []zap.Field{zap.Int("port", cfg.Port)}
	for _, attr := range cfg.Attributes() {
		fields = append(fields, zap.String(string(attr.Key), attr.Value.Emit()))
	}
	return fields
}
