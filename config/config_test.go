package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plank.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[bar]
height = 1
gap = 3
foreground = "252"
accent = "212"

[[module]]
type = "clock"
format = "15:04"

[[module]]
type = "script"
id = "volume"
command = "pamixer --get-volume"
interval = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 3, cfg.Bar.Gap)
	require.Equal(t, "212", cfg.Bar.Accent)
	require.Len(t, cfg.Modules, 2)
	require.Equal(t, "clock", cfg.Modules[0].Type)
	require.Equal(t, "15:04", cfg.Modules[0].Format)
	require.Equal(t, "volume", cfg.Modules[1].ID)
	require.Equal(t, 5, cfg.Modules[1].Interval)
}

func TestLoadClampsBarValues(t *testing.T) {
	path := writeConfig(t, `
[bar]
height = 0
gap = -2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Bar.Height)
	require.Zero(t, cfg.Bar.Gap)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `[bar`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "config "+path)
}

func TestDefaultConfigBuilds(t *testing.T) {
	require.NotEmpty(t, Default().Modules)
}

func TestFileUnderDir(t *testing.T) {
	require.Equal(t, Dir(), filepath.Dir(File()))
	require.Equal(t, "plank.toml", filepath.Base(File()))
}
