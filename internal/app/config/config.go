package config

import (
	"errors"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the catalog tools.
type Config struct {
	CatalogFile string `envconfig:"CATALOG_FILE" default:"data/produits.json"`
	JournalFile string `envconfig:"CATALOG_JOURNAL_FILE"`

	LogMode  string `envconfig:"LOG_MODE" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFile  string `envconfig:"LOG_FILE"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.CatalogFile) == "" {
		return nil, errors.New("catalog file path must not be empty")
	}
	switch cfg.LogMode {
	case "development", "production":
	default:
		return nil, errors.New("log mode must be development or production")
	}
	return &cfg, nil
}

// IsProduction returns true when logs should be JSON at info level.
func (c *Config) IsProduction() bool {
	return c != nil && c.LogMode == "production"
}

// JournalEnabled reports whether saves append to a change journal.
func (c *Config) JournalEnabled() bool {
	return c != nil && c.JournalFile != ""
}
