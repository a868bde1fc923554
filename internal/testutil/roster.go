// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Names returns a fresh copy of the twelve-player fixture roster.
func Names() []string {
	return []string{
		"Abbott", "Baker", "Castillo", "Dunn", "Ellis", "Fuentes",
		"Garvey", "Hughes", "Ibarra", "Jensen", "Kowalski", "Lopez",
	}
}

// WriteRoster writes the fixture roster as players.dat in dir and returns
// its path.
func WriteRoster(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "players.dat")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(Names(), "\n")+"\n"), 0600))
	return path
}
