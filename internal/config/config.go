// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/lingua-match/internal/logger"
)

// Default values applied by MergeWithDefaults(Defaults()).
const (
	DefaultParallelThreshold = 256
	DefaultFeedSize          = 20
	DefaultLogLevel          = "info"
	DefaultEnv               = "production"
	DefaultPort              = 8080
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Engine
	Workers           int `json:"workers,omitempty"`            // Ranking goroutines; 0 means one per CPU
	ParallelThreshold int `json:"parallel_threshold,omitempty"` // Pool size at which ranking goes parallel
	FeedSize          int `json:"feed_size,omitempty"`          // Default number of feed entries
	CandidateLimit    int `json:"candidate_limit,omitempty"`    // Stored candidates scored per feed; 0 means all

	// Runtime
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn or error
	Env      string `json:"env,omitempty"`       // "development" enables console logs
	Port     int    `json:"port,omitempty"`      // HTTP port for serve
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ParallelThreshold: DefaultParallelThreshold,
		FeedSize:          DefaultFeedSize,
		LogLevel:          DefaultLogLevel,
		Env:               DefaultEnv,
		Port:              DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.ParallelThreshold < 0 {
		return fmt.Errorf("config error: 'parallel_threshold' must be non-negative")
	}
	if c.FeedSize < 0 {
		return fmt.Errorf("config error: 'feed_size' must be non-negative")
	}
	if c.CandidateLimit < 0 {
		return fmt.Errorf("config error: 'candidate_limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	return nil
}

// ApplyEnv overrides fields from DATABASE_URL, LOG_LEVEL, APP_ENV and PORT when they are set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn("Ignoring invalid PORT", "value", v, "error", err)
			return
		}
		c.Port = port
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Env == "" {
		result.Env = defaults.Env
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.ParallelThreshold == 0 {
		result.ParallelThreshold = defaults.ParallelThreshold
	}
	if result.FeedSize == 0 {
		result.FeedSize = defaults.FeedSize
	}
	if result.CandidateLimit == 0 {
		result.CandidateLimit = defaults.CandidateLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
