// Package config handles configuration for the FamVault CLI: defaults,
// optional JSON file, environment variables, and command-line flags,
// in that order of precedence (later sources win).
package config

import "time"

// Config holds runtime settings for the FamVault CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite account database.
//   - StoreTimeout: upper bound for a single store operation.
type Config struct {
	DatabasePath string        `env:"FAMVAULT_DB"`
	StoreTimeout time.Duration `env:"FAMVAULT_STORE_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "famvault.db"
	c.StoreTimeout = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
