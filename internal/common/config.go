// Package common provides shared utilities for the ledger engine.
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the ledger CLI and server.
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Ingest      IngestConfig  `toml:"ingest"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration for cmd/ledger-server.
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	MaxBodyBytes    int64  `toml:"max_body_bytes"`
	RateLimitPerSec int    `toml:"rate_limit_per_sec"`
	RateLimitBurst  int    `toml:"rate_limit_burst"`
}

// IngestConfig holds CSV ingestion behavior for cmd/ledger-cli.
type IngestConfig struct {
	LogMalformedRows bool `toml:"log_malformed_rows"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			MaxBodyBytes:    32 * 1024,
			RateLimitPerSec: 50,
			RateLimitBurst:  100,
		},
		Ingest: IngestConfig{
			LogMalformedRows: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from TOML files with environment overrides.
// Paths are applied in order, later files overriding earlier ones; missing
// files are skipped rather than treated as an error.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("LEDGER_ENV"); env != "" {
		config.Environment = env
	}
	if host := os.Getenv("LEDGER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("LEDGER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("LEDGER_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
