package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console prompts and validation messages.
const (
	MenuPrompt = "1 - Data Entry\n2 - Display Summary\n3 - Exit Program"
	MenuError  = "Invalid option. Please enter 1-3."

	PlayerPrompt = "Enter Player Number (1-12)."
	PlayerError  = "Invalid Player Number. Please enter 1-12."

	AtBatsPrompt = "Enter number of At Bats."
	AtBatsError  = "Invalid At Bats. Please enter a whole number."

	HitsPrompt = "Enter number of Hits."
	HitsError  = "Invalid Hits. Please enter a whole number."
)

// Menu options.
const (
	OptionDataEntry = 1
	OptionSummary   = 2
	OptionExit      = 3
)

// MaxPlayer is the highest valid player number.
const MaxPlayer = 12

// Prompter reads validated values from an input source.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading lines from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadMenuChoice prints the menu and returns a choice in 1..3.
func (p *Prompter) ReadMenuChoice() (int, error) {
	return p.readInt(MenuPrompt, MenuError, inRange(OptionDataEntry, OptionExit))
}

// ReadPlayerNumber returns a player number in 1..12.
func (p *Prompter) ReadPlayerNumber() (int, error) {
	return p.readInt(PlayerPrompt, PlayerError, inRange(1, MaxPlayer))
}

// ReadAtBats returns a non-negative number of at-bats.
func (p *Prompter) ReadAtBats() (int, error) {
	return p.readInt(AtBatsPrompt, AtBatsError, nonNegative)
}

// ReadHits returns a non-negative number of hits.
func (p *Prompter) ReadHits() (int, error) {
	return p.readInt(HitsPrompt, HitsError, nonNegative)
}

// ReadContinue reads a yes/no answer. Only "Y" or "y" means yes.
func (p *Prompter) ReadContinue() (bool, error) {
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// WaitForEnter blocks until a line is entered.
func (p *Prompter) WaitForEnter() error {
	_, err := p.readLine()
	return err
}

// readInt is the shared prompt/validate/accept loop.
func (p *Prompter) readInt(prompt, invalid string, accept func(int) bool) (int, error) {
	for {
		fmt.Fprintln(p.out, prompt)

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && accept(n) {
			return n, nil
		}
		fmt.Fprintf(p.out, "\n%s\n", invalid)
	}
}

// readLine returns the next line without its terminator. Lines of any length
// are accepted; a final unterminated line is still returned.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading console input: %w", err)
	}
	if err != nil && line == "" {
		return "", fmt.Errorf("console input closed: %w", io.EOF)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func inRange(lo, hi int) func(int) bool {
	return func(n int) bool { return n >= lo && n <= hi }
}

func nonNegative(n int) bool {
	return n >= 0
}
