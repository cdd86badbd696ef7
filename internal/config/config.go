// Package config provides configuration loading and validation for the
// CLI and the API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied by MergeWithDefaults when a field is unset.
const (
	DefaultPort               = 8000
	DefaultMaxUploadMB        = 10
	DefaultRateLimitPerMinute = 60
)

// Config represents settings that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port               int  `json:"port,omitempty"`                  // HTTP listen port
	MaxUploadMB        int  `json:"max_upload_mb,omitempty"`         // Resume upload size limit
	RateLimitPerMinute int  `json:"rate_limit_per_minute,omitempty"` // Per-client request budget
	RateLimitDisabled  bool `json:"rate_limit_disabled,omitempty"`   // Turn rate limiting off

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key; empty selects rule-based rewriting
	Verbose bool   `json:"verbose,omitempty"` // Print detailed analysis output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Boolean fields keep their explicit values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	return result
}

// Default returns the built-in configuration. The API key comes from the
// GEMINI_API_KEY environment variable when set.
func Default() Config {
	return Config{
		Port:               DefaultPort,
		MaxUploadMB:        DefaultMaxUploadMB,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		APIKey:             os.Getenv("GEMINI_API_KEY"),
	}
}

// MaxUploadBytes converts the upload limit to bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
