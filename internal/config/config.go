package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"80"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TaxJar
	TaxJarEndpoint string        `envconfig:"TAXJAR_ENDPOINT"`
	TaxJarKey      string        `envconfig:"TAXJAR_KEY"`
	TaxJarEnabled  bool          `envconfig:"TAXJAR_ENABLED" default:"true"`
	TaxJarUseMock  bool          `envconfig:"TAXJAR_USE_MOCK" default:"false"`
	TaxJarTimeout  time.Duration `envconfig:"TAXJAR_TIMEOUT" default:"30s"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"taxservice"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables. Values from a .env
// file in the working directory are applied first; variables already set in
// the environment win. A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("taxjar.enabled", c.TaxJarEnabled),
		attribute.Bool("taxjar.configured", c.TaxJarEndpoint != "" || c.TaxJarUseMock),
	}
}
