package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "  ", cfg.Output.Indent)
	assert.False(t, cfg.Output.Loc)
	assert.False(t, cfg.Output.Range)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Nil(t, cfg.LogFile())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
color = "never"

[output]
format = "yaml"
loc = true
range = true

[log]
verbosity = 2
file = "solparse.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.True(t, cfg.Output.Loc)
	assert.True(t, cfg.Output.Range)
	assert.Equal(t, "  ", cfg.Output.Indent, "missing settings fall back to defaults")
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	require.NotNil(t, cfg.LogFile())
	assert.Equal(t, "solparse.log", *cfg.LogFile())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	_, err = Load(writeConfig(t, dir, "[output\nformat = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Load(writeConfig(t, dir, "[output]\nformat = \"xml\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")

	_, err = Load(writeConfig(t, dir, "[output]\npretty = true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.pretty")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Discover("", dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	writeConfig(t, dir, "[output]\nloc = true\n")
	cfg, err = Discover("", dir)
	require.NoError(t, err)
	assert.True(t, cfg.Output.Loc)

	_, err = Discover(filepath.Join(dir, "other.toml"), dir)
	assert.Error(t, err, "an explicit path must exist")
}
