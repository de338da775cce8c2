package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir()) // no config.yaml present

	require.NoError(t, InitConfig(""))
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.App.DockerTimeoutSeconds)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "/volume1/docker/Homepage/services.yaml", cfg.Homepage.ConfigPath)
	assert.Equal(t, 5, cfg.Homepage.ReloadTimeoutSeconds)
}

func TestInitConfigExplicitFile(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "homepage:\n  reload_url: http://dashboard.test/reload\n  lock_timeout_seconds: 9\nlog:\n  log_level: DEBUG\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, InitConfig(path))
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://dashboard.test/reload", cfg.Homepage.ReloadURL)
	assert.Equal(t, 9, cfg.Homepage.LockTimeoutSeconds)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 10, cfg.App.DockerTimeoutSeconds)
}

func TestInitConfigExplicitFileMissing(t *testing.T) {
	viper.Reset()

	err := InitConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
