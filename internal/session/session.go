// Package session runs the data-entry loop: it collects (player, at-bats,
// hits) submissions and accumulates them into the stats table until the user
// declines to enter more.
package session

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/battrack/internal/ctxlog"
	"github.com/vk/battrack/internal/prompt"
	"github.com/vk/battrack/internal/roster"
	"github.com/vk/battrack/internal/screen"
	"github.com/vk/battrack/internal/stats"
)

const (
	// HitsExceedAtBats is printed when a submission has more hits than at-bats.
	HitsExceedAtBats = "Error! Hits can't be greater than At Bats. Please re-enter data."
	// TotalsTooLarge is printed when a submission would overflow a player's totals.
	TotalsTooLarge = "Error! Totals would be too large for this player. Please re-enter data."
	// Submitted confirms an accumulated submission and asks to continue.
	Submitted = "Data submitted! Would you like to enter more data? (Y/N)"
)

// Submission is one validated entry for a player.
type Submission struct {
	Player int
	AtBats int
	Hits   int
}

// Session holds what a data-entry run reads from and writes to.
type Session struct {
	Prompter *prompt.Prompter
	Out      io.Writer
	Roster   *roster.Roster
	Table    *stats.Table
	Screen   screen.Clearer
}

// Run repeats submissions until the user answers anything but "Y". It returns
// nil when the user stops, or the prompt error if the input is exhausted.
func (s *Session) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Data entry session started.")

	for {
		s.Screen.Clear()

		sub, err := s.readSubmission()
		if err != nil {
			return err
		}

		slot := stats.SlotFromPlayer(sub.Player)
		s.Table.Accumulate(slot, sub.AtBats, sub.Hits)
		logger.Debug("Submission accumulated.",
			"player", slot.Player(),
			"name", s.Roster.Name(int(slot)),
			"at_bats", sub.AtBats,
			"hits", sub.Hits,
		)

		fmt.Fprintln(s.Out, Submitted)
		again, err := s.Prompter.ReadContinue()
		if err != nil {
			return err
		}
		if !again {
			logger.Debug("Data entry session finished.")
			return nil
		}
	}
}

// readSubmission collects a triple, discarding any where hits exceed at-bats
// or where accumulating it would overflow the player's totals.
func (s *Session) readSubmission() (Submission, error) {
	for {
		player, err := s.Prompter.ReadPlayerNumber()
		if err != nil {
			return Submission{}, err
		}
		atBats, err := s.Prompter.ReadAtBats()
		if err != nil {
			return Submission{}, err
		}
		hits, err := s.Prompter.ReadHits()
		if err != nil {
			return Submission{}, err
		}

		if hits > atBats {
			fmt.Fprintf(s.Out, "\n%s\n", HitsExceedAtBats)
			continue
		}
		slot := stats.SlotFromPlayer(player)
		if !slot.Valid() {
			fmt.Fprintf(s.Out, "\n%s\n", prompt.PlayerError)
			continue
		}
		if !s.Table.Fits(slot, atBats, hits) {
			fmt.Fprintf(s.Out, "\n%s\n", TotalsTooLarge)
			continue
		}
		return Submission{Player: player, AtBats: atBats, Hits: hits}, nil
	}
}
