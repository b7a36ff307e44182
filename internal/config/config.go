package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the InnSight backend.
// Environment variables are parsed from the INNSIGHT_ prefix, e.g.
// INNSIGHT_HTTP_PORT, INNSIGHT_DB_DRIVER.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage. DBDriver selects the backing store: sqlite (default, local
	// file) or postgres (requires PostgresDSN).
	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/innsight.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Auth. APIKeys maps bearer tokens to user ids as a comma-separated
	// list of token:userId pairs. DevMode additionally accepts the shared
	// local development key.
	APIKeys string `envconfig:"API_KEYS" default:""`
	DevMode bool   `envconfig:"DEV_MODE" default:"true"`

	// Dashboard display policy: how many most-recent days the history
	// shows unless the caller asks for everything.
	HistoryDays int `envconfig:"HISTORY_DAYS" default:"2"`
}

// New creates a Config by parsing INNSIGHT_-prefixed environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("INNSIGHT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that envconfig cannot express.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH required for sqlite driver")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN required for postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.HistoryDays < 0 {
		return fmt.Errorf("HISTORY_DAYS must be >= 0")
	}
	if _, err := c.ParseAPIKeys(); err != nil {
		return err
	}
	return nil
}

// ParseAPIKeys expands the APIKeys list into a token -> userId map.
func (c *Config) ParseAPIKeys() (map[string]string, error) {
	keys := make(map[string]string)
	if c.APIKeys == "" {
		return keys, nil
	}
	for _, pair := range strings.Split(c.APIKeys, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, userID, found := strings.Cut(pair, ":")
		if !found || token == "" || userID == "" {
			return nil, fmt.Errorf("malformed API_KEYS entry %q, want token:userId", pair)
		}
		keys[token] = userID
	}
	return keys, nil
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
