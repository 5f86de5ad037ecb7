package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndValidation(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/login", cfg.Portal.LoginPath)
	assert.Equal(t, "/account/tolls/csv", cfg.Portal.FeedPath)
	assert.Equal(t, "data/session.json", cfg.Session.File)
	assert.Equal(t, "data/toll_sentinel.db", cfg.Database.SQLitePath)
	assert.NotEmpty(t, cfg.Schedule.CheckCron)

	// Credentials have no defaults.
	assert.Error(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
portal:
  base_url: https://portal.example.com
  username: fileuser
  password: filepass
`), 0600))

	t.Setenv("PORTAL_USERNAME", "envuser")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.com", cfg.Portal.BaseURL)
	assert.Equal(t, "envuser", cfg.Portal.Username, "env must override file")
	assert.Equal(t, "filepass", cfg.Portal.Password)
	assert.NoError(t, cfg.Validate())

	// Daemon mode additionally needs Telegram wiring.
	assert.Error(t, cfg.ValidateDaemon())
	cfg.Telegram.BotToken = "tok"
	cfg.Telegram.ChatID = "42"
	assert.NoError(t, cfg.ValidateDaemon())
}
