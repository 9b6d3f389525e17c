package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "AGENT_URL", "LOG_LEVEL",
		"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, "10003", cfg.Port)
	assert.Equal(t, ":10003", cfg.Addr())
	assert.Equal(t, "http://localhost:10003", cfg.AgentURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("HTTP_IDLE_TIMEOUT", "not-a-duration")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
	assert.Equal(t, "http://localhost:8081", cfg.AgentURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		level   string
		wantErr bool
	}{
		{"ok", "10003", "info", false},
		{"not a number", "abc", "info", true},
		{"zero", "0", "info", true},
		{"too big", "70000", "info", true},
		{"bad level", "10003", "verbose", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Port: tt.port, LogLevel: tt.level}
			err := cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() error = %v", err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv only fills variables that are not set at all
	require.NoError(t, os.Unsetenv("PORT"))
	t.Setenv("HOST", "from-environment")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9999\nHOST=from-file\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "from-environment", cfg.Host)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
