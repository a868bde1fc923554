// Package screen clears the console between menu screens.
package screen

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearSequence homes the cursor and erases the display.
const clearSequence = "\033[H\033[2J"

// Clearer wipes the console.
type Clearer interface {
	Clear()
}

// New returns a Clearer for w. Clearing happens only when enabled and w is a
// terminal; redirected output and test buffers get a no-op.
func New(w io.Writer, enabled bool) Clearer {
	if enabled && isTerminal(w) {
		return &ansiClearer{w: w}
	}
	return Noop{}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type ansiClearer struct {
	w io.Writer
}

func (c *ansiClearer) Clear() {
	fmt.Fprint(c.w, clearSequence)
}

// Noop is a Clearer that does nothing.
type Noop struct{}

// Clear implements Clearer.
func (Noop) Clear() {}
