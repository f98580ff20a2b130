package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerstudio-forge/cloudsync/pkg/cloud"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cloudsync.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, cloud.DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Nil(t, cfg.Ntfy)
	})

	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
base_url      = "https://projects.example.com"
user_id       = "u-123"
workspace_dir = "/home/me/makerstudio"
timeout       = "30s"
log_level     = "debug"

ntfy {
  server_url = "https://ntfy.example.com"
  topic      = "makerstudio-sync"
}
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://projects.example.com", cfg.BaseURL)
		assert.Equal(t, "u-123", cfg.UserID)
		assert.Equal(t, "/home/me/makerstudio", cfg.WorkspaceDir)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
		assert.Equal(t, "debug", cfg.LogLevel)
		require.NotNil(t, cfg.Ntfy)
		assert.Equal(t, "makerstudio-sync", cfg.Ntfy.Topic)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `user_id = "u-9"`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "u-9", cfg.UserID)
		assert.Equal(t, cloud.DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
		require.Error(t, err)
	})

	t.Run("bad HCL", func(t *testing.T) {
		path := writeConfig(t, `base_url = `)
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		path := writeConfig(t, `timeout = "soonish"`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timeout")
	})

	t.Run("bad scheme", func(t *testing.T) {
		path := writeConfig(t, `base_url = "ftp://projects"`)
		_, err := Load(path)
		require.Error(t, err)
	})
}
