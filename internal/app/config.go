package app

import (
	"errors"
	"fmt"

	"github.com/vk/battrack/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RosterPath   string // one player name per line
	SettingsPath string // optional HCL settings file

	LogFormat   string
	LogLevel    string
	ClearScreen bool

	// Explicit records the setting keys given on the command line; those win
	// over values from the settings file.
	Explicit map[string]bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RosterPath == "" {
		return errors.New("RosterPath is a required configuration field and cannot be empty")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	return nil
}

// applySettings copies file values into c for every key not set explicitly,
// then re-validates the merged result.
func (c *Config) applySettings(s *config.Settings) error {
	if s.RosterPath != nil && !c.Explicit[config.KeyRosterPath] {
		c.RosterPath = *s.RosterPath
	}
	if s.LogLevel != nil && !c.Explicit[config.KeyLogLevel] {
		c.LogLevel = *s.LogLevel
	}
	if s.LogFormat != nil && !c.Explicit[config.KeyLogFormat] {
		c.LogFormat = *s.LogFormat
	}
	if s.ClearScreen != nil && !c.Explicit[config.KeyClearScreen] {
		c.ClearScreen = *s.ClearScreen
	}
	if err := c.validate(); err != nil {
		return fmt.Errorf("settings file %s: %w", c.SettingsPath, err)
	}
	return nil
}
