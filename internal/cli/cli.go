package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/battrack/internal/app"
	"github.com/vk/battrack/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flagKeys maps flag names to the settings keys they override.
var flagKeys = map[string]string{
	"roster":     config.KeyRosterPath,
	"r":          config.KeyRosterPath,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
	"no-clear":   config.KeyClearScreen,
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("battrack", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
battrack - Track batting averages for a 12-player roster.

Usage:
  battrack [options] [ROSTER_PATH]

Arguments:
  ROSTER_PATH
    Text file with exactly 12 player names, one per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	rosterFlag := flagSet.String("roster", "players.dat", "Path to the roster file.")
	rFlag := flagSet.String("r", "", "Path to the roster file (shorthand).")
	configFlag := flagSet.String("config", "", "Optional HCL settings file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noClearFlag := flagSet.Bool("no-clear", false, "Never clear the screen between menus.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			explicit[key] = true
		}
	})

	path := *rosterFlag
	if *rFlag != "" {
		path = *rFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
		explicit[config.KeyRosterPath] = true
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	slog.Debug("Roster path determined.", "path", path)

	cfg, err := app.NewConfig(app.Config{
		RosterPath:   path,
		SettingsPath: *configFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
		ClearScreen:  !*noClearFlag,
		Explicit:     explicit,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
