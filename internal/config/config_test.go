package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/cvs",
		"ai_requests_per_minute": 5,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/cvs", cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.AIRequestsPerMinute)
	assert.True(t, cfg.Verbose)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EmptyPathYieldsEmptyConfig(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 0, cfg.Port)
}

func TestFillFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/cvs")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "7070")
	t.Setenv("AI_REQUESTS_PER_MINUTE", "3")
	t.Setenv("VERBOSE", "1")

	cfg := &Config{}
	cfg.FillFromEnv()

	assert.Equal(t, "postgres://env/cvs", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 3, cfg.AIRequestsPerMinute)
	assert.True(t, cfg.Verbose)
}

func TestFillFromEnv_FileValuesWin(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/cvs")
	t.Setenv("PORT", "7070")

	cfg := &Config{Port: 9090, DatabaseURL: "postgres://file/cvs"}
	cfg.FillFromEnv()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://file/cvs", cfg.DatabaseURL)
}

func TestValidate_RequiresDatabaseURL(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database_url is required")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/cvs", Port: 70000}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/cvs", Port: 8080}
	assert.NoError(t, cfg.Validate())
}
