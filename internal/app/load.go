package app

import (
	"context"
	"fmt"

	"github.com/vk/battrack/internal/config"
	"github.com/vk/battrack/internal/ctxlog"
	"github.com/vk/battrack/internal/roster"
)

// loadSettings merges the optional settings file into cfg.
func loadSettings(ctx context.Context, cfg *Config, loader config.Loader) error {
	if cfg.SettingsPath == "" {
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file...", "path", cfg.SettingsPath)

	settings, err := loader.Load(ctx, cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := cfg.applySettings(settings); err != nil {
		return err
	}

	logger.Debug("Settings merged.", "roster_path", cfg.RosterPath, "log_level", cfg.LogLevel)
	return nil
}

// loadRoster reads the roster named by the configuration.
func (a *App) loadRoster(ctx context.Context) error {
	r, err := roster.Load(ctx, a.config.RosterPath)
	if err != nil {
		return err
	}
	a.roster = r
	ctxlog.FromContext(ctx).Info("Roster loaded successfully.", "path", a.config.RosterPath, "players", r.Len())
	return nil
}
