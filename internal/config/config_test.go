package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/app"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/assist"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"HTTP_PORT", "GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL",
		"REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "CHECKOUT_DELAY", "SESSION_TTL", "ASSIST_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 2500*time.Millisecond, cfg.CheckoutDelay)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Assist.Model)
	assert.Empty(t, cfg.Assist.APIKey)
}

func TestDefault_TracksPackageDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, app.DefaultCheckoutDelay, cfg.CheckoutDelay)
	assert.Equal(t, session.DefaultTTL, cfg.SessionTTL)
	assert.Equal(t, assist.DefaultModel, cfg.Assist.Model)
	assert.Equal(t, assist.DefaultTimeout, cfg.Assist.Timeout)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
http_port: "9090"
checkout_delay: 500ms
session_ttl: 1h
assist:
  model: gemini-2.5-flash
  timeout: 5s
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 500*time.Millisecond, cfg.CheckoutDelay)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "gemini-2.5-flash", cfg.Assist.Model)
	assert.Equal(t, 5*time.Second, cfg.Assist.Timeout)
	// untouched keys keep their defaults
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "http_port: \"9090\"\n")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("CHECKOUT_DELAY", "1s")
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, time.Second, cfg.CheckoutDelay)
	assert.Equal(t, "legacy-key", cfg.Assist.APIKey)
}

func TestLoad_GeminiKeyWinsOverAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.Assist.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeFile(t, "http_port: [\n"))
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SESSION_TTL", "forever")
		_, err := Load("")
		assert.ErrorContains(t, err, "SESSION_TTL")
	})

	t.Run("invalid values", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeFile(t, "session_ttl: 0s\ncheckout_delay: -1s\n"))
		assert.ErrorContains(t, err, "session_ttl must be positive")
		assert.ErrorContains(t, err, "checkout_delay must not be negative")
	})
}
