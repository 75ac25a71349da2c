package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/idilsaglam/kanban/internal/model"
	"github.com/idilsaglam/kanban/internal/source"
)

// Config represents the complete kanban configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Board   BoardConfig   `mapstructure:"board"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig controls where tickets come from
type SourceConfig struct {
	// URL of the endpoint returning {"tickets": [...]}
	URL string `mapstructure:"url"`
	// File, when set, is read instead of calling URL
	File string `mapstructure:"file"`
	// Token is sent as a bearer token when non-empty
	Token string `mapstructure:"token"`
	// TimeoutSeconds bounds the single fetch (0 = no timeout)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// BoardConfig holds the initial display settings
type BoardConfig struct {
	// Grouping is one of "status", "user", "priority"
	Grouping string `mapstructure:"grouping"`
	// Ordering is one of "priority", "title"
	Ordering string `mapstructure:"ordering"`
	// Locale drives title collation, as a BCP 47 tag (default: "en")
	Locale string `mapstructure:"locale"`
}

// UIConfig controls terminal rendering
type UIConfig struct {
	// Theme is one of "classic", "neon", "mono"
	Theme string `mapstructure:"theme"`
	// ColumnWidth is the width of a board column in cells (min: 20)
	ColumnWidth int `mapstructure:"column_width"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// File receives logs; empty discards them while the board owns the terminal
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:            source.DefaultURL,
			TimeoutSeconds: 15,
		},
		Board: BoardConfig{
			Grouping: "status",
			Ordering: "priority",
			Locale:   "en",
		},
		UI: UIConfig{
			Theme:       "classic",
			ColumnWidth: 32,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(ConfigDir(), "kanban.log"),
		},
	}
}

// SetDefaults registers Default() with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("source.url", defaults.Source.URL)
	viper.SetDefault("source.file", defaults.Source.File)
	viper.SetDefault("source.token", defaults.Source.Token)
	viper.SetDefault("source.timeout_seconds", defaults.Source.TimeoutSeconds)

	viper.SetDefault("board.grouping", defaults.Board.Grouping)
	viper.SetDefault("board.ordering", defaults.Board.Ordering)
	viper.SetDefault("board.locale", defaults.Board.Locale)

	viper.SetDefault("ui.theme", defaults.UI.Theme)
	viper.SetDefault("ui.column_width", defaults.UI.ColumnWidth)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Source.URL == "" && c.Source.File == "" {
		errs = append(errs, errors.New("source: one of url or file is required"))
	}
	if c.Source.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("source.timeout_seconds: must be >= 0, got %d", c.Source.TimeoutSeconds))
	}
	if _, ok := model.ParseGroupKey(c.Board.Grouping); !ok {
		errs = append(errs, fmt.Errorf("board.grouping: %q is not one of status, user, priority", c.Board.Grouping))
	}
	if _, ok := model.ParseSortMode(c.Board.Ordering); !ok {
		errs = append(errs, fmt.Errorf("board.ordering: %q is not one of priority, title", c.Board.Ordering))
	}
	if _, err := language.Parse(c.Board.Locale); err != nil {
		errs = append(errs, fmt.Errorf("board.locale: %w", err))
	}
	switch strings.ToLower(c.UI.Theme) {
	case "classic", "neon", "mono":
	default:
		errs = append(errs, fmt.Errorf("ui.theme: %q is not one of classic, neon, mono", c.UI.Theme))
	}
	if c.UI.ColumnWidth < 20 {
		errs = append(errs, fmt.Errorf("ui.column_width: must be >= 20, got %d", c.UI.ColumnWidth))
	}
	return errors.Join(errs...)
}

// Timeout returns the fetch timeout as a duration.
func (c *SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GroupKey returns the configured grouping, falling back to status.
func (c *BoardConfig) GroupKey() model.GroupKey {
	k, _ := model.ParseGroupKey(c.Grouping)
	return k
}

// SortMode returns the configured ordering.
func (c *BoardConfig) SortMode() model.SortMode {
	m, _ := model.ParseSortMode(c.Ordering)
	return m
}

// Language returns the collation locale, falling back to English.
func (c *BoardConfig) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kanban")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kanban"
	}
	return filepath.Join(home, ".config", "kanban")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
