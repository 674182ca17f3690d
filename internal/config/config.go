// Package config loads the application configuration from the environment,
// with an optional .env file for local overrides.
package config

import (
	"fmt"
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Backend names accepted by Config.Backend.
const (
	BackendSQLite   = "sqlite"
	BackendJSONFile = "jsonfile"
)

// Config holds everything the CLI needs to wire a tracker together.
type Config struct {
	// Backend selects the storage backend.
	Backend string `env:"MONEYMAN_BACKEND" envDefault:"sqlite"`

	// DBPath is the SQLite database file (sqlite backend).
	DBPath string `env:"MONEYMAN_DB_PATH" envDefault:"./data/moneyman.db"`

	// DataDir is the collection directory (jsonfile backend).
	DataDir string `env:"MONEYMAN_DATA_DIR" envDefault:"./data"`

	// Currency is the ISO 4217 code used to render amounts.
	Currency string `env:"MONEYMAN_CURRENCY" envDefault:"USD"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns an error describing every
// problem found.
func (c *Config) Validate() error {
	var errors []string

	switch c.Backend {
	case BackendSQLite, BackendJSONFile:
	default:
		errors = append(errors, fmt.Sprintf("invalid backend %q: must be one of %s, %s",
			c.Backend, BackendSQLite, BackendJSONFile))
	}

	if money.GetCurrency(strings.ToUpper(c.Currency)) == nil {
		errors = append(errors, fmt.Sprintf("unknown currency code %q", c.Currency))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, "; "))
	}
	return nil
}
