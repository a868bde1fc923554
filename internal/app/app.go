package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/battrack/internal/config"
	"github.com/vk/battrack/internal/ctxlog"
	"github.com/vk/battrack/internal/prompt"
	"github.com/vk/battrack/internal/roster"
	"github.com/vk/battrack/internal/screen"
	"github.com/vk/battrack/internal/session"
	"github.com/vk/battrack/internal/stats"
)

// App is the application state: the roster and stats table, built once at
// startup, plus the console it talks to.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	roster   *roster.Roster
	table    *stats.Table
	prompter *prompt.Prompter
	screen   screen.Clearer
}

// NewApp is the constructor for the main application. It merges the optional
// settings file, loads the roster, and initializes an all-zero stats table.
// A roster or settings failure is a fatal startup error.
func NewApp(ctx context.Context, cfg *Config, in io.Reader, outW, errW io.Writer, loader config.Loader) (*App, error) {
	// Settings can change the log level, so they load under a bootstrap logger.
	bootstrap := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	if err := loadSettings(ctxlog.WithLogger(ctx, bootstrap), cfg, loader); err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		table:    stats.NewTable(),
		prompter: prompt.New(in, outW),
		screen:   screen.New(outW, cfg.ClearScreen),
	}
	if err := a.loadRoster(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Roster returns the loaded roster.
func (a *App) Roster() *roster.Roster {
	return a.roster
}

// Table returns the stats table. This is primarily for testing.
func (a *App) Table() *stats.Table {
	return a.table
}

// Config returns the merged configuration.
func (a *App) Config() *Config {
	return a.config
}

func (a *App) newSession() *session.Session {
	return &session.Session{
		Prompter: a.prompter,
		Out:      a.outW,
		Roster:   a.roster,
		Table:    a.table,
		Screen:   a.screen,
	}
}
