package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TUTORDESK_LOG_LEVEL", "")
	t.Setenv("TUTORDESK_LOG_FILE", "")
	t.Setenv("TUTORDESK_LOG_CONSOLE", "")
	t.Setenv("TUTORDESK_SEED", "")

	cfg := DefaultConfig()

	assert.True(t, cfg.ConfirmDelete)
	assert.True(t, cfg.SeedSampleData)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, ".tutordesk", "logs", "tutordesk.log"), cfg.LogFile)
	assert.False(t, cfg.LogConsole)
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TUTORDESK_LOG_LEVEL", "DEBUG")
	t.Setenv("TUTORDESK_LOG_FILE", "/tmp/x.log")
	t.Setenv("TUTORDESK_LOG_CONSOLE", "true")
	t.Setenv("TUTORDESK_SEED", "false")

	cfg := DefaultConfig()

	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
	assert.True(t, cfg.LogConsole)
	assert.False(t, cfg.SeedSampleData)
}

func TestDefaultConfig_BadBoolFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TUTORDESK_SEED", "maybe")

	assert.True(t, DefaultConfig().SeedSampleData)
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.ConfirmDelete = false
	cfg.LogLevel = "WARN"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.False(t, loaded.ConfirmDelete)
	assert.Equal(t, "WARN", loaded.LogLevel)
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: ERROR\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.LogLevel)
	assert.True(t, cfg.ConfirmDelete)
	assert.True(t, cfg.SeedSampleData)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unterminated"), 0644))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, LoadDotEnv(), "missing .env is not an error")

	t.Setenv("TUTORDESK_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("TUTORDESK_LOG_LEVEL"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TUTORDESK_LOG_LEVEL=WARN\n"), 0644))
	require.NoError(t, LoadDotEnv())
	assert.Equal(t, "WARN", os.Getenv("TUTORDESK_LOG_LEVEL"))
}
