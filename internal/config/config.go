// Package config loads runtime configuration from the environment and an
// optional YAML settings file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is everything the server needs to run. It is built once at
// startup and passed explicitly to the components that need it; there is
// no process-global configuration state.
type Config struct {
	APIKey   string
	BaseURL  string
	Settings Settings
}

// Settings are optional server tunables, read from the YAML file named by
// NEWSAPI_MCP_SETTINGS. Every field has a working default.
type Settings struct {
	LogLevel    string        // log_level: debug, info, warn, error
	HTTPTimeout time.Duration // http_timeout: Go duration, e.g. "30s"
	UserAgent   string        // user_agent
}

// DefaultSettings returns the values used when no settings file is given.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:    "info",
		HTTPTimeout: 30 * time.Second,
		UserAgent:   "newsapi-mcp/1.0",
	}
}

// Load reads configuration from the environment. A .env file is loaded
// first when present, for local development. NEWSAPI_KEY and NEWSAPI_URL
// are required; either missing is an error and the process must not
// start serving without both.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:   os.Getenv("NEWSAPI_KEY"),
		BaseURL:  strings.TrimRight(os.Getenv("NEWSAPI_URL"), "/"),
		Settings: DefaultSettings(),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("NEWSAPI_KEY environment variable is not set")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("NEWSAPI_URL environment variable is not set")
	}

	if path := os.Getenv("NEWSAPI_MCP_SETTINGS"); path != "" {
		settings, err := loadSettings(path)
		if err != nil {
			return nil, err
		}
		cfg.Settings = settings
	}

	return cfg, nil
}

// loadSettings parses the YAML settings file at path. Fields left out of
// the file keep their defaults; a malformed file or unknown value is an
// error so a typo does not silently run with defaults.
func loadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var raw struct {
		LogLevel    string `yaml:"log_level"`
		HTTPTimeout string `yaml:"http_timeout"`
		UserAgent   string `yaml:"user_agent"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return settings, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if raw.LogLevel != "" {
		switch raw.LogLevel {
		case "debug", "info", "warn", "error":
			settings.LogLevel = raw.LogLevel
		default:
			return settings, fmt.Errorf("invalid log_level %q in %s", raw.LogLevel, path)
		}
	}
	if raw.HTTPTimeout != "" {
		d, err := time.ParseDuration(raw.HTTPTimeout)
		if err != nil {
			return settings, fmt.Errorf("invalid http_timeout %q in %s: %w", raw.HTTPTimeout, path, err)
		}
		if d <= 0 {
			return settings, fmt.Errorf("http_timeout must be positive in %s", path)
		}
		settings.HTTPTimeout = d
	}
	if raw.UserAgent != "" {
		settings.UserAgent = raw.UserAgent
	}
	return settings, nil
}
