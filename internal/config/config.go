// Package config provides configuration loading for the CV builder server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config is the server configuration. It can be loaded from a JSON file;
// missing values fall back to environment variables and defaults.
type Config struct {
	Port                int    `json:"port,omitempty"`
	DatabaseURL         string `json:"database_url,omitempty"`
	GeminiAPIKey        string `json:"gemini_api_key,omitempty"`
	AIRequestsPerMinute int    `json:"ai_requests_per_minute,omitempty"`
	Verbose             bool   `json:"verbose,omitempty"`
}

// Load reads configuration from a JSON file. An empty path yields an
// empty config that FillFromEnv completes.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
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

// FillFromEnv fills empty fields from environment variables.
func (c *Config) FillFromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = p
		}
	}
	if c.AIRequestsPerMinute == 0 {
		if n, err := strconv.Atoi(os.Getenv("AI_REQUESTS_PER_MINUTE")); err == nil {
			c.AIRequestsPerMinute = n
		}
	}
	if !c.Verbose {
		c.Verbose = os.Getenv("VERBOSE") == "1"
	}
}

// Validate checks that the configuration can run the server.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database_url is required (set DATABASE_URL)")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.AIRequestsPerMinute < 0 {
		return fmt.Errorf("config error: ai_requests_per_minute must be non-negative")
	}
	return nil
}
