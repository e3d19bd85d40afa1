// Package config loads the editor settings from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ionut-t/richedit/internal/logger"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds the application's combined configuration.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Logger LoggerConfig `toml:"logger" yaml:"logger"`
	Theme  ThemeConfig  `toml:"theme" yaml:"theme"`

	warnings []string
}

type EditorConfig struct {
	MaxHistory     int    `toml:"max_history" yaml:"max_history"` // 0 keeps every snapshot
	Placeholder    string `toml:"placeholder" yaml:"placeholder"`
	SourceTheme    string `toml:"source_theme" yaml:"source_theme"` // Chroma style, empty disables highlighting
	WrapWidth      int    `toml:"wrap_width" yaml:"wrap_width"`     // 0 wraps at the window width
	ShowStatusLine bool   `toml:"show_status_line" yaml:"show_status_line"`
	ShowToolbar    bool   `toml:"show_toolbar" yaml:"show_toolbar"`
	CursorBlink    bool   `toml:"cursor_blink" yaml:"cursor_blink"`
	MessageTimeout int    `toml:"message_timeout_ms" yaml:"message_timeout_ms"`
}

type LoggerConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"` // "-" logs to stderr, empty discards
}

// ThemeConfig overrides colours of the default theme. Values are anything
// lipgloss accepts as a colour: ANSI numbers or hex strings.
type ThemeConfig struct {
	Accent    string `toml:"accent" yaml:"accent"`
	Selection string `toml:"selection" yaml:"selection"`
	Link      string `toml:"link" yaml:"link"`
	Heading   string `toml:"heading" yaml:"heading"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			MaxHistory:     DefaultMaxHistory,
			Placeholder:    DefaultPlaceholder,
			SourceTheme:    DefaultSourceTheme,
			ShowStatusLine: true,
			ShowToolbar:    true,
			MessageTimeout: int(DefaultMessageTimeout / time.Millisecond),
		},
		Logger: LoggerConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Warnings returns the problems Load found and worked around: unknown keys and
// invalid values. Load runs before logging is configured, so callers log
// them once the logger is set up.
func (c *Config) Warnings() []string {
	return c.warnings
}

func (c *Config) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// MessageDuration is MessageTimeout as a duration.
func (c *Config) MessageDuration() time.Duration {
	return time.Duration(c.Editor.MessageTimeout) * time.Millisecond
}

// DefaultPath returns the config file location under the user config
// directory, or "" when that cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// Load reads the configuration at path on top of the defaults. The format is
// picked by extension. A missing file is not an error: the defaults are
// returned. With an empty path DefaultPath is tried.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debugf("Config file not found: %s", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = loadTOML(path, cfg)
	case ".yaml", ".yml":
		err = loadYAML(path, cfg)
	default:
		return NewDefaultConfig(), fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return NewDefaultConfig(), err
	}

	cfg.validate()
	logger.Infof("Loaded configuration from: %s", path)

	return cfg, nil
}

func loadTOML(path string, cfg *Config) error {
	metadata, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		cfg.warnf("Config file '%s': unrecognized keys: %v", path, undecoded)
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	err = decoder.Decode(cfg)
	var typeErr *yaml.TypeError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &typeErr):
		// the rest of the document is still decoded
		cfg.warnf("Config file '%s': %s", path, strings.Join(typeErr.Errors, "; "))
		return nil
	}
	return fmt.Errorf("failed to parse config file '%s': %w", path, err)
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.MaxHistory < 0 {
		c.warnf("Config: invalid max_history %d, using %d", c.Editor.MaxHistory, defaults.Editor.MaxHistory)
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Editor.WrapWidth < 0 {
		c.warnf("Config: invalid wrap_width %d, using 0", c.Editor.WrapWidth)
		c.Editor.WrapWidth = 0
	}
	if c.Editor.MessageTimeout <= 0 {
		c.warnf("Config: invalid message_timeout_ms %d, using %d", c.Editor.MessageTimeout, defaults.Editor.MessageTimeout)
		c.Editor.MessageTimeout = defaults.Editor.MessageTimeout
	}

	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
		c.Logger.Level = strings.ToLower(c.Logger.Level)
	default:
		if c.Logger.Level != "" {
			c.warnf("Config: invalid log level %q, using %q", c.Logger.Level, defaults.Logger.Level)
		}
		c.Logger.Level = defaults.Logger.Level
	}
}
