package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Run("overrides only the fields the file sets", func(t *testing.T) {
		path := writeConfigFile(t, `
timing:
  token: file-timing-token
clockify:
  token: file-clockify-token
  workspace_name: FileWorkspace
sync:
  refresh_interval: 2m
  backfill_days: 60
log:
  level: warn
`)

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromFile(path))

		assert.Equal(t, "file-timing-token", cfg.Timing.Token)
		assert.Equal(t, "file-clockify-token", cfg.Clockify.Token)
		assert.Equal(t, "FileWorkspace", cfg.Clockify.WorkspaceName)
		assert.Equal(t, 2*time.Minute, cfg.Sync.RefreshInterval)
		assert.Equal(t, 60, cfg.Sync.BackfillDays)
		assert.Equal(t, "warn", cfg.Log.Level)

		// Untouched fields keep their defaults
		assert.Equal(t, "https://web.timingapp.com/api/v1/", cfg.Timing.URL)
		assert.Equal(t, 7, cfg.Sync.PollWindowDays)
	})

	t.Run("an explicit zero backfill is honored", func(t *testing.T) {
		path := writeConfigFile(t, "sync:\n  backfill_days: 0\n")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromFile(path))
		assert.Equal(t, 0, cfg.Sync.BackfillDays)
	})

	t.Run("a bad duration fails loudly", func(t *testing.T) {
		path := writeConfigFile(t, "sync:\n  refresh_interval: whenever\n")

		cfg := NewConfig()
		err := cfg.LoadFromFile(path)
		require.Error(t, err)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "sync.refresh_interval", cfgErr.Field)
	})

	t.Run("a missing file is an error", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("unparseable yaml is an error", func(t *testing.T) {
		path := writeConfigFile(t, "timing: [not: a: mapping\n")

		cfg := NewConfig()
		err := cfg.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoader_Load(t *testing.T) {
	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfigFile(t, `
timing:
  token: file-timing-token
clockify:
  token: file-clockify-token
  workspace_name: FileWorkspace
`)
		t.Setenv("T2C_TIMING_TOKEN", "env-timing-token")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)

		assert.Equal(t, "env-timing-token", cfg.Timing.Token)
		assert.Equal(t, "file-clockify-token", cfg.Clockify.Token)
	})

	t.Run("an empty path skips the file step", func(t *testing.T) {
		t.Setenv("T2C_TIMING_TOKEN", "env-timing-token")
		t.Setenv("T2C_CLOCKIFY_TOKEN", "env-clockify-token")
		t.Setenv("T2C_CLOCKIFY_WORKSPACE", "EnvWorkspace")

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "EnvWorkspace", cfg.Clockify.WorkspaceName)
	})

	t.Run("an invalid result fails validation", func(t *testing.T) {
		_, err := NewLoader().Load("")
		require.Error(t, err)

		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})
}
