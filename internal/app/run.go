package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/battrack/internal/ctxlog"
	"github.com/vk/battrack/internal/prompt"
	"github.com/vk/battrack/internal/report"
)

const (
	menuHeader    = "Please select an option:"
	summaryFooter = "\nPress Enter to return to main menu..."
)

// Run is the menu loop. It returns nil when the user picks Exit or the
// console input ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for {
		a.screen.Clear()
		fmt.Fprintln(a.outW, menuHeader)

		choice, err := a.prompter.ReadMenuChoice()
		if err != nil {
			return a.stop(err)
		}
		a.logger.Debug("Menu option selected.", "option", choice)

		switch choice {
		case prompt.OptionDataEntry:
			err = a.newSession().Run(ctx)
		case prompt.OptionSummary:
			err = a.showSummary()
		case prompt.OptionExit:
			a.logger.Info("Exit selected.")
			return nil
		}
		if err != nil {
			return a.stop(err)
		}
	}
}

// Summary renders the current summary table.
func (a *App) Summary() string {
	return report.Render(a.roster, a.table)
}

func (a *App) showSummary() error {
	a.screen.Clear()
	fmt.Fprint(a.outW, a.Summary())
	fmt.Fprintln(a.outW, summaryFooter)
	return a.prompter.WaitForEnter()
}

// stop treats closed input as a normal exit.
func (a *App) stop(err error) error {
	if errors.Is(err, io.EOF) {
		a.logger.Info("Console input closed, exiting.")
		return nil
	}
	return fmt.Errorf("console interaction failed: %w", err)
}
