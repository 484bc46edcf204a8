package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppopeskul/telegram-dashboard/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Polling.SessionInterval())
	assert.Equal(t, 4*time.Second, cfg.Polling.HistoryInterval())
	assert.Equal(t, 5*time.Second, cfg.Polling.PoolInterval())
	assert.Equal(t, 3, cfg.QR.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.QR.AttemptWindow())
	assert.Equal(t, 10000, cfg.Cache.WebhookTTLMs)
	assert.Equal(t, "file", cfg.Credentials.Store)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
backend:
  base_url: https://tg.example.com/api/v1
polling:
  session_interval_ms: 1500
credentials:
  store: memory
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://tg.example.com/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Polling.SessionInterval())
	assert.Equal(t, "memory", cfg.Credentials.Store)
}

func TestLoadConfig_APIURLEnvOverride(t *testing.T) {
	t.Setenv(config.APIURLEnv, "http://backend.internal/api/v1")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://backend.internal/api/v1", cfg.Backend.BaseURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "unknown credentials store",
			content: "credentials:\n  store: vault\n",
			errMsg:  "unknown credentials.store",
		},
		{
			name:    "unknown uploader",
			content: "media:\n  uploader: ftp\n",
			errMsg:  "unknown media.uploader",
		},
		{
			name:    "zero qr attempts",
			content: "qr:\n  max_attempts: 0\n",
			errMsg:  "qr.max_attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := config.LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDatabaseConfig_GetURL(t *testing.T) {
	d := config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "events",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://u:p@db:5432/events?sslmode=disable", d.GetURL())
	assert.True(t, d.Enabled())
	assert.False(t, (&config.DatabaseConfig{}).Enabled())
}
