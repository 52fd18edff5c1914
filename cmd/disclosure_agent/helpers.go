package main

import (
	"os"

	"github.com/kaiwen/disclosure-ingest/internal/config"
)

// loadOptionalConfig loads a JSON config file when a path is given, otherwise
// returns an empty config.
func loadOptionalConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// resolveDatabaseURL resolves the connection URL: flag, then DATABASE_URL,
// then config file.
func resolveDatabaseURL(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return cfg.DatabaseURL
}

// resolveAPIKey resolves the model API key: flag, then GEMINI_API_KEY, then
// config file.
func resolveAPIKey(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return cfg.APIKey
}
