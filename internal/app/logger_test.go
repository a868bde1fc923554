package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelWarn,
		"":      slog.LevelWarn,
	}

	for levelStr, want := range testCases {
		logger := newLogger(levelStr, "text", &bytes.Buffer{})
		assert.True(t, logger.Enabled(context.Background(), want), "level %q", levelStr)
		assert.False(t, logger.Enabled(context.Background(), want-1), "level %q", levelStr)
	}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	newLogger("info", "json", buf).Info("Roster loaded.", "players", 12)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Roster loaded.", record["msg"])
	assert.EqualValues(t, 12, record["players"])
}
