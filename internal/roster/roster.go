package roster

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/battrack/internal/ctxlog"
)

// Size is the number of roster slots.
const Size = 12

var (
	// ErrWrongCount is returned when the source does not hold exactly Size names.
	ErrWrongCount = errors.New("roster must contain exactly 12 player names")
	// ErrBlankName is returned when a blank line appears among the names.
	ErrBlankName = errors.New("roster contains a blank player name")
)

// LoadError reports a roster source that could not be opened, read or
// accepted.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load roster %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Roster is the ordered list of player names, indexed by slot 0..Size-1.
type Roster struct {
	names [Size]string
}

// Load reads the roster from the file at path.
func Load(ctx context.Context, path string) (*Roster, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Opening roster file.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r, err := parse(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	logger.Debug("Roster loaded.", "path", path, "players", Size)
	return r, nil
}

func parse(src io.Reader) (*Roster, error) {
	var lines []string
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}

	// A trailing newline or padding at the end of the file is not a player.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != Size {
		return nil, fmt.Errorf("%w: found %d", ErrWrongCount, len(lines))
	}

	r := &Roster{}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return nil, fmt.Errorf("%w: line %d", ErrBlankName, i+1)
		}
		r.names[i] = line
	}
	return r, nil
}

// New builds a roster directly from names, applying the same rules as Load.
func New(names ...string) (*Roster, error) {
	return parse(strings.NewReader(strings.Join(names, "\n")))
}

// Name returns the player name held in slot.
func (r *Roster) Name(slot int) string {
	return r.names[slot]
}

// Len returns the number of slots.
func (r *Roster) Len() int {
	return len(r.names)
}

// Names returns a copy of all names in slot order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names[:])
	return out
}
