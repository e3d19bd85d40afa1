package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
	assert.Equal(t, DefaultSourceTheme, cfg.Editor.SourceTheme)
	assert.True(t, cfg.Editor.ShowStatusLine)
	assert.True(t, cfg.Editor.ShowToolbar)
	assert.Equal(t, DefaultMessageTimeout, cfg.MessageDuration())
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[editor]
max_history = 50
placeholder = "Type here"
wrap_width = 72
show_toolbar = false
message_timeout_ms = 1500

[logger]
level = "DEBUG"

[theme]
accent = "#ff79c6"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Editor.MaxHistory)
	assert.Equal(t, "Type here", cfg.Editor.Placeholder)
	assert.Equal(t, 72, cfg.Editor.WrapWidth)
	assert.False(t, cfg.Editor.ShowToolbar)
	assert.True(t, cfg.Editor.ShowStatusLine, "unset keys keep their defaults")
	assert.Equal(t, 1500*time.Millisecond, cfg.MessageDuration())
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "#ff79c6", cfg.Theme.Accent)
}

func TestLoad_TOMLUnknownKeys(t *testing.T) {
	path := writeFile(t, "config.toml", "[editor]\nmax_history = 5\ncolour = \"red\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Editor.MaxHistory)
	require.Len(t, cfg.Warnings(), 1)
	assert.Contains(t, cfg.Warnings()[0], "editor.colour")
}

func TestLoad_TOMLSyntaxError(t *testing.T) {
	path := writeFile(t, "config.toml", "[editor\nmax_history = ")

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
editor:
  max_history: 0
  source_theme: ""
  cursor_blink: true
theme:
  link: "45"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Editor.MaxHistory)
	assert.Empty(t, cfg.Editor.SourceTheme)
	assert.True(t, cfg.Editor.CursorBlink)
	assert.Equal(t, "45", cfg.Theme.Link)
}

func TestLoad_YAMLUnknownFieldIsWarning(t *testing.T) {
	path := writeFile(t, "config.yml", "editor:\n  wrap_width: 40\n  colour: red\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Editor.WrapWidth)
	require.Len(t, cfg.Warnings(), 1)
	assert.Contains(t, cfg.Warnings()[0], "colour")
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", ""))

	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(writeFile(t, "config.json", "{}"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidate_ResetsInvalidValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.MaxHistory = -3
	cfg.Editor.WrapWidth = -1
	cfg.Editor.MessageTimeout = 0
	cfg.Logger.Level = "loud"

	cfg.validate()

	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
	assert.Equal(t, 0, cfg.Editor.WrapWidth)
	assert.Equal(t, DefaultMessageTimeout, cfg.MessageDuration())
	assert.Equal(t, DefaultLogLevel, cfg.Logger.Level)
	assert.Len(t, cfg.Warnings(), 4)
}
