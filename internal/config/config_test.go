package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"OUTPUT_DIR", "PDF_BASE_NAME", "LOGO_PATH", "MAX_PRINCIPAL", "LOG_LEVEL", "OTEL_ENDPOINT", "OTEL_SERVICE_NAME", "METRICS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "download", cfg.OutputDir)
	assert.Equal(t, "calcul_amortissement", cfg.PDFBaseName)
	assert.Equal(t, "logo_microlead.png", cfg.LogoPath)
	assert.Equal(t, 1e12, cfg.MaxPrincipal)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.OTELEndpoint)
	assert.Equal(t, "loan-amortization", cfg.OTELServiceName)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/exports")
	t.Setenv("MAX_PRINCIPAL", "5000")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/exports", cfg.OutputDir)
	assert.Equal(t, 5000.0, cfg.MaxPrincipal)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadConfigIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_PRINCIPAL", "lots")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1e12, cfg.MaxPrincipal)
}
