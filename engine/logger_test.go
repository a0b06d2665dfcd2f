package engine_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/matmul/engine"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *engine.Logger {
	return engine.NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.New()
	l := newBufferLogger(&buf).WithJob(id).WithLane(3)

	l.LogReplyDropped(id, 17)
	out := buf.String()
	require.Contains(t, out, "reply dropped")
	require.Contains(t, out, "job="+id.String())
	require.Contains(t, out, "lane=3")
	require.Contains(t, out, "index=17")
}

func TestLoggerMultiplyLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogMultiply(2, 3, 4, 8, 0, nil)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "multiply completed")

	buf.Reset()
	l.LogMultiply(2, 3, 4, 8, 0, errors.New("x"))
	require.Contains(t, buf.String(), "level=ERROR")
	require.Contains(t, buf.String(), "error=x")

	buf.Reset()
	l.LogLaneExit(10, 1)
	require.Contains(t, buf.String(), "level=WARN")
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := engine.NoopLogger()
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestNewLoggerNilHandler(t *testing.T) {
	l := engine.NewLogger(nil)
	require.NotNil(t, l.Logger)
	require.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	require.False(t, l.Enabled(context.Background(), slog.LevelDebug)) // per-multiply records stay quiet
}
