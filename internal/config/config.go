// Package config handles loading and validating the pawmart configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pawmart/pawmart/pkg/catalog"
)

// Config is the top-level application configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Identity  IdentityConfig  `yaml:"identity"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	State     StateConfig     `yaml:"state"`
	DevServer DevServerConfig `yaml:"devserver"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// APIConfig defines the listings/orders REST API settings. The base URL is
// deliberately required: there is no built-in default deployment.
type APIConfig struct {
	BaseURL   string          `yaml:"base_url"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines client-side request pacing.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// IdentityConfig defines the identity provider settings.
type IdentityConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// CatalogConfig defines listing page defaults.
type CatalogConfig struct {
	PageSize    int    `yaml:"page_size"`
	DefaultSort string `yaml:"default_sort"`
	RecentLimit int    `yaml:"recent_limit"`
}

// StateConfig defines where the session and theme preference are kept.
type StateConfig struct {
	Path string `yaml:"path"`
}

// DevServerConfig defines the local fake API server. Without a database URL
// listings and orders live in memory.
type DevServerConfig struct {
	Addr        string `yaml:"addr"`
	TokenSecret string `yaml:"token_secret"`
	Fixture     string `yaml:"fixture"`
	DatabaseURL string `yaml:"database_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// Load reads a .env file next to path when present, then parses the YAML
// config, performing environment variable substitution, defaults and
// validation.
func Load(path string) (*Config, error) {
	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config bytes with env substitution, defaults and
// validation.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a config with defaults applied and the given API base URL,
// for use when no config file exists.
func Default(baseURL string) *Config {
	cfg := &Config{API: APIConfig{BaseURL: baseURL}}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyAPIDefaults(&cfg.API)
	applyCatalogDefaults(&cfg.Catalog)
	applyStateDefaults(&cfg.State)
	applyDevServerDefaults(&cfg.DevServer)
	applyLoggingDefaults(&cfg.Logging)
}

func applyAPIDefaults(a *APIConfig) {
	if a.Timeout == 0 {
		a.Timeout = 15 * time.Second
	}
	if a.RateLimit.PerSecond == 0 {
		a.RateLimit.PerSecond = 10
	}
	if a.RateLimit.Burst == 0 {
		a.RateLimit.Burst = 5
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.PageSize == 0 {
		c.PageSize = catalog.DefaultPageSize
	}
	if c.DefaultSort == "" {
		c.DefaultSort = string(catalog.SortNewest)
	}
	if c.RecentLimit == 0 {
		c.RecentLimit = 8
	}
}

func applyStateDefaults(s *StateConfig) {
	if s.Path != "" {
		return
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	s.Path = filepath.Join(dir, "pawmart", "state.yaml")
}

func applyDevServerDefaults(d *DevServerConfig) {
	if d.Addr == "" {
		d.Addr = "127.0.0.1:3000"
	}
	if d.TokenSecret == "" {
		d.TokenSecret = "pawmart-dev-secret"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "warn"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	} else if err := validateURL(cfg.API.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("api.base_url: %w", err))
	}

	if cfg.Identity.BaseURL != "" {
		if err := validateURL(cfg.Identity.BaseURL); err != nil {
			errs = append(errs, fmt.Errorf("identity.base_url: %w", err))
		}
	}

	if cfg.Catalog.PageSize < 0 {
		errs = append(errs, fmt.Errorf("catalog.page_size must be positive (got %d)", cfg.Catalog.PageSize))
	}
	if _, err := catalog.ParseSortKey(cfg.Catalog.DefaultSort); err != nil {
		errs = append(errs, fmt.Errorf("catalog.default_sort: %w", err))
	}

	if cfg.API.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("api.rate_limit.per_second must not be negative"))
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
