package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/taxservice/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.TaxJarEndpoint)
	assert.Empty(t, cfg.TaxJarKey)
	assert.True(t, cfg.TaxJarEnabled)
	assert.False(t, cfg.TaxJarUseMock)
	assert.Equal(t, 30*time.Second, cfg.TaxJarTimeout)
	assert.False(t, cfg.OTELEnabled)
	assert.Equal(t, "taxservice", cfg.ServiceName)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("TAXJAR_ENDPOINT", "https://api.taxjar.com/v2")
	t.Setenv("TAXJAR_KEY", "secret")
	t.Setenv("TAXJAR_TIMEOUT", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://api.taxjar.com/v2", cfg.TaxJarEndpoint)
	assert.Equal(t, "secret", cfg.TaxJarKey)
	assert.Equal(t, 5*time.Second, cfg.TaxJarTimeout)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TAXJAR_ENDPOINT=https://from-file.test\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	t.Cleanup(func() { os.Unsetenv("TAXJAR_ENDPOINT") })

	cfg, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "https://from-file.test", cfg.TaxJarEndpoint)
	assert.Equal(t, "warn", cfg.LogLevel, "environment overrides the file")
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConfig_Attributes(t *testing.T) {
	cfg := &config.Config{ServiceName: "taxservice", Version: "1.2.3", TaxJarEnabled: true}

	attrs := cfg.Attributes()
	require.Len(t, attrs, 4)
	assert.Equal(t, "taxservice", attrs[0].Value.AsString())
	assert.False(t, attrs[3].Value.AsBool())
}
