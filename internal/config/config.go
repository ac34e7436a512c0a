// Package config loads plugin configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all plugin settings. Everything is optional: with no
// environment at all the plugin runs anonymously against the public API
// with a one-day cache TTL.
type Config struct {
	// APIKey authenticates against Context7. Empty means anonymous access.
	APIKey string `env:"CONTEXT7_API_KEY"`

	// BaseURL is the Context7 API root.
	BaseURL string `env:"CONTEXT7_BASE_URL" envDefault:"https://context7.com/api"`

	// CacheDir is the mounted cache directory. If it does not exist,
	// caching is disabled.
	CacheDir string `env:"CACHE_DIR" envDefault:"/cache"`

	// CacheTTLDays is the entry lifetime in days. Zero makes every entry
	// stale on read.
	CacheTTLDays int `env:"CACHE_TTL" envDefault:"1"`

	// HTTPTimeoutSeconds bounds each upstream request.
	HTTPTimeoutSeconds int `env:"HTTP_TIMEOUT" envDefault:"30"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.CacheTTLDays < 0 {
		return nil, fmt.Errorf("CACHE_TTL must be non-negative, got %d", cfg.CacheTTLDays)
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", cfg.HTTPTimeoutSeconds)
	}
	return cfg, nil
}

// CacheTTL returns the configured entry lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}

// HTTPTimeout returns the upstream request deadline as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
