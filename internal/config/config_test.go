package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORICALC_HOME", home)
	t.Setenv("RORICALC_ANGLE_MODE", "")
	t.Setenv("RORICALC_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	path := filepath.Join(home, ".roricalc", "config.yaml")
	assert.Equal(t, path, cfg.Path())
	assert.FileExists(t, path)
	assert.Equal(t, "deg", cfg.AngleMode)
	assert.Equal(t, "comp", cfg.Mode)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, ".roricalc", "roricalc.log"), cfg.Logging.File)
	assert.True(t, cfg.Display.ShowKeypad)
}

func TestSaveAndReload(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORICALC_HOME", home)
	t.Setenv("RORICALC_ANGLE_MODE", "")
	t.Setenv("RORICALC_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.AngleMode = "rad"
	cfg.Display.ShowKeypad = false
	require.NoError(t, cfg.Save())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "rad", loaded.AngleMode)
	assert.False(t, loaded.Display.ShowKeypad)
	assert.Equal(t, "warn", loaded.Logging.Level)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORICALC_HOME", home)
	t.Setenv("RORICALC_ANGLE_MODE", "")
	t.Setenv("RORICALC_LOG_LEVEL", "")

	dir := filepath.Join(home, ".roricalc")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("mode: eqn\n"), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "eqn", cfg.Mode)
	assert.Equal(t, "deg", cfg.AngleMode)
	assert.True(t, cfg.Display.ShowKeypad)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RORICALC_ANGLE_MODE", "GRA")
	t.Setenv("RORICALC_LOG_LEVEL", "debug")

	cfg := DefaultConfig(t.TempDir())
	cfg.applyEnvOverrides()
	assert.Equal(t, "gra", cfg.AngleMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.AngleMode = "turns"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Mode = "cmplx"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Logging.Level = "loud"
	assert.Error(t, bad.Validate())
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORICALC_HOME", home)
	t.Setenv("RORICALC_ANGLE_MODE", "")
	t.Setenv("RORICALC_LOG_LEVEL", "")

	dir := filepath.Join(home, ".roricalc")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("angle_mode: [\n"), 0600))
	_, err := LoadConfig()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("angle_mode: turns\n"), 0600))
	_, err = LoadConfig()
	assert.Error(t, err)
}
