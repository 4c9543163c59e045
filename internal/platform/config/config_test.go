package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := ServerFromEnv()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestServerFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := ServerFromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestExtractorFromEnv(t *testing.T) {
	t.Setenv("PROJECT_ID", "demo-project")
	t.Setenv("DOCUMENTAI_LOCATION", "")
	t.Setenv("PROCESSOR_ID_LEAD_PAINT", "lp-123")
	t.Setenv("PROCESSOR_ID_FORM_PARSER", " fp-456 ")
	t.Setenv("PROCESSOR_ID_CA_RPA", "")
	t.Setenv("PROCESSOR_ID_BIA", "")

	cfg := ExtractorFromEnv()
	assert.Equal(t, "demo-project", cfg.ProjectID)
	assert.Equal(t, "us", cfg.Location)
	assert.Equal(t, map[string]string{"lead_paint": "lp-123", "form_parser": "fp-456"}, cfg.ProcessorIDs)
}

func TestOrchestratorFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("UPSTREAM_TIMEOUT", "")
		t.Setenv("INTENT_PROCESSOR_URL", "https://intent.example.com/")

		cfg, err := OrchestratorFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultUpstreamTimeout, cfg.UpstreamTimeout)
		assert.Equal(t, "https://intent.example.com", cfg.IntentURL)
	})

	t.Run("seconds", func(t *testing.T) {
		t.Setenv("UPSTREAM_TIMEOUT", "3")
		cfg, err := OrchestratorFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("UPSTREAM_TIMEOUT", "1500ms")
		cfg, err := OrchestratorFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 1500*time.Millisecond, cfg.UpstreamTimeout)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("UPSTREAM_TIMEOUT", "soon")
		_, err := OrchestratorFromEnv()
		assert.Error(t, err)
	})

	t.Run("non-positive", func(t *testing.T) {
		t.Setenv("UPSTREAM_TIMEOUT", "0")
		_, err := OrchestratorFromEnv()
		assert.Error(t, err)
	})
}
