// Package config builds the explicit configuration injected into every
// component at startup. Nothing in the repo reads ambient globals: the
// composition root loads one ClientConfig (or ServerConfig) and passes it
// down, so tests can substitute alternate base URLs and timeouts.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// StorageKeys namespace the session entries so multiple app variants
// sharing one database do not collide.
type StorageKeys struct {
	Token        string `env:"GETWAY_KEY_TOKEN" yaml:"token"`
	User         string `env:"GETWAY_KEY_USER" yaml:"user"`
	RefreshToken string `env:"GETWAY_KEY_REFRESH" yaml:"refresh_token"`
}

// ClientConfig configures the HTTP client core and the session store.
type ClientConfig struct {
	BaseURL string        `env:"GETWAY_API_URL" yaml:"base_url"`
	Timeout time.Duration `env:"GETWAY_TIMEOUT" yaml:"timeout"`
	DBPath  string        `env:"GETWAY_DB" yaml:"db_path"` // ":memory:" for tests
	Keys    StorageKeys   `yaml:"storage_keys"`
}

// DefaultClientConfig returns the stock configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: "http://localhost:8080",
		Timeout: 15 * time.Second,
		Keys: StorageKeys{
			Token:        "getway.auth.token",
			User:         "getway.auth.user",
			RefreshToken: "getway.auth.refresh_token",
		},
	}
}

// ServerConfig holds configuration for the development API server.
type ServerConfig struct {
	Addr      string `env:"GETWAY_ADDR" yaml:"addr"`
	LogLevel  string `env:"GETWAY_LOG_LEVEL" yaml:"log_level"`
	LogFormat string `env:"GETWAY_LOG_FORMAT" yaml:"log_format"`
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Dir returns the per-user GetWay directory (~/.getway), creating it if
// needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	dir := filepath.Join(home, ".getway")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// Load builds the client configuration in three layers: defaults, then
// ~/.getway/config.yaml when present, then environment variables (a .env
// file in the working directory is honored).
func Load() (ClientConfig, error) {
	cfg := DefaultClientConfig()

	// Missing .env is the normal case.
	_ = godotenv.Load()

	if dir, err := Dir(); err == nil {
		if err := cfg.applyFile(filepath.Join(dir, "config.yaml")); err != nil {
			return cfg, err
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("decode environment: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// applyFile overlays values from a YAML config file. A missing file is
// not an error; a malformed one is.
func (c *ClientConfig) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ResolveDBPath returns the session database path, defaulting to
// ~/.getway/getway.db when the configuration leaves it blank.
func (c ClientConfig) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "getway.db"), nil
}
