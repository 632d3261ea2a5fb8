package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janus-dev87/llama-parse/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "text", cfg.ResultFormat)
	assert.Equal(t, 1, cfg.CheckIntervalSecs)
	assert.Equal(t, 2000, cfg.MaxTimeoutSecs)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.Empty(t, cfg.OutputDir)
}

func TestLoad_EnvironmentBindings(t *testing.T) {
	t.Setenv("LLAMA_CLOUD_API_KEY", "key-from-env")
	t.Setenv("LLAMA_CLOUD_BASE_URL", "http://localhost:9999")
	t.Setenv("LLAMA_PARSE_RESULT_FORMAT", "markdown")
	t.Setenv("LLAMA_PARSE_CHECK_INTERVAL_SECS", "5")
	t.Setenv("LLAMA_PARSE_MAX_TIMEOUT_SECS", "60")
	t.Setenv("LLAMA_PARSE_VERBOSE", "false")
	t.Setenv("LLAMA_PARSE_CONCURRENCY", "4")
	t.Setenv("LLAMA_PARSE_OUTPUT_DIR", "out")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, "markdown", cfg.ResultFormat)
	assert.Equal(t, 5, cfg.CheckIntervalSecs)
	assert.Equal(t, 60, cfg.MaxTimeoutSecs)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, "out", cfg.OutputDir)
}
