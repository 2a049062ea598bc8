package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NEWSAPI_KEY", "test-key")
	t.Setenv("NEWSAPI_URL", "https://newsapi.example.com/v2")
	t.Setenv("NEWSAPI_MCP_SETTINGS", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://newsapi.example.com/v2", cfg.BaseURL)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "newsapi-mcp/1.0", cfg.Settings.UserAgent)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("NEWSAPI_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NEWSAPI_KEY")
	})

	t.Run("missing url", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("NEWSAPI_URL", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NEWSAPI_URL")
	})
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NEWSAPI_URL", "https://newsapi.example.com/v2/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://newsapi.example.com/v2", cfg.BaseURL)
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_SettingsFile(t *testing.T) {
	setRequiredEnv(t)
	path := writeSettings(t, "log_level: debug\nhttp_timeout: 5s\nuser_agent: custom/2.0\n")
	t.Setenv("NEWSAPI_MCP_SETTINGS", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "custom/2.0", cfg.Settings.UserAgent)
}

func TestLoad_PartialSettingsKeepDefaults(t *testing.T) {
	setRequiredEnv(t)
	path := writeSettings(t, "log_level: warn\n")
	t.Setenv("NEWSAPI_MCP_SETTINGS", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Settings.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Settings.HTTPTimeout)
}

func TestLoad_BadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "log_level: [unclosed"},
		{"unknown log level", "log_level: verbose\n"},
		{"unparsable timeout", "http_timeout: soon\n"},
		{"negative timeout", "http_timeout: -5s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			path := writeSettings(t, tt.content)
			t.Setenv("NEWSAPI_MCP_SETTINGS", path)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingSettingsFileIsError(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NEWSAPI_MCP_SETTINGS", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}
