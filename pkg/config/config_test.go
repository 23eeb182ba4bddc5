package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BLOCKS_CONFIG_PATH", t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BLOCKS_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".blocks.yaml"), []byte(
		"log_file: ~/blocks.log\nlog_level: debug\ndebug: true\nmouse: false\nmenu_rows: 4\n"), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogFile:  filepath.Join(home, "blocks.log"),
		LogLevel: "debug",
		Debug:    true,
		Mouse:    false,
		MenuRows: 4,
	}, cfg)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("BLOCKS_CONFIG_PATH", t.TempDir())
	t.Setenv("BLOCKS_DEBUG", "true")
	t.Setenv("BLOCKS_MENU_ROWS", "0")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 8, cfg.MenuRows)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BLOCKS_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".blocks.yaml"), []byte("debug: [\n"), 0o644))

	_, err := Load(nil)
	require.Error(t, err)
}
