package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsEmbeddedLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello", "player", "Casey")

	require.Same(t, logger, FromContext(ctx))
	require.Contains(t, buf.String(), "player=Casey")
}

func TestFromContext_MissingLoggerDiscards(t *testing.T) {
	logger := FromContext(context.Background())

	require.NotNil(t, logger)
	require.NotPanics(t, func() { logger.Error("dropped") })
}
