// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags. Environment variables (DATABASE_URL, GEMINI_API_KEY) and flags
// take precedence over the file.
type Config struct {
	// Collaborators
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty,uri"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`                               // Gemini API key

	// Storage behavior
	BatchSize int `json:"batch_size,omitempty" validate:"gte=0"` // rows per insert batch

	// Analysis behavior: announcements per run, in-flight announcements, and
	// the result directory.
	AnalyzeLimit       int    `json:"analyze_limit,omitempty" validate:"gte=0"`
	AnalyzeConcurrency int    `json:"analyze_concurrency,omitempty" validate:"gte=0,lte=16"`
	OutputDir          string `json:"output_dir,omitempty"`
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration's struct tags. Required fields are not
// enforced here; they are checked per command after flags are merged.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.BatchSize == 0 {
		result.BatchSize = defaults.BatchSize
	}
	if result.AnalyzeLimit == 0 {
		result.AnalyzeLimit = defaults.AnalyzeLimit
	}
	if result.AnalyzeConcurrency == 0 {
		result.AnalyzeConcurrency = defaults.AnalyzeConcurrency
	}

	return result
}
