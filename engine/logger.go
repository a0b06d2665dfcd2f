// SPDX-License-Identifier: MIT

package engine

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger is the engine's diagnostic sink. Records carry "job" (one per
// multiplication) and "lane" attributes. Completed multiplies and clean lane
// exits log at Debug, dropped replies and lanes that saw panics at Warn,
// task panics and failed multiplies at Error.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler writes Info and above as text to
// stderr, so failures stay visible while per-multiply Debug records do not.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON records at level or above to stderr, one object
// per lane or multiply event.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs key=value records at level or above to stderr.
// Pass slog.LevelDebug to see every multiply and lane shutdown.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger is the default when WithLogger is not given: every record,
// including task panics, is dropped.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: noopLevel}))
}

// noopLevel sits above every level the engine emits.
const noopLevel = slog.LevelError + 1000

// WithJob tags every record with the multiplication's job id.
func (l *Logger) WithJob(id uuid.UUID) *Logger {
	return &Logger{Logger: l.Logger.With("job", id.String())}
}

// WithLane tags every record with a lane id.
func (l *Logger) WithLane(id int) *Logger {
	return &Logger{Logger: l.Logger.With("lane", id)}
}

// LogMultiply logs the outcome of one multiplication.
func (l *Logger) LogMultiply(rows, inner, cols, tasks int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("multiply failed",
			"rows", rows,
			"inner", inner,
			"cols", cols,
			"tasks", tasks,
			"error", err,
		)
		return
	}
	l.Debug("multiply completed",
		"rows", rows,
		"inner", inner,
		"cols", cols,
		"tasks", tasks,
		"elapsed", elapsed,
	)
}

// LogLaneExit logs a lane reaching its Closed state.
func (l *Logger) LogLaneExit(processed, panics int64) {
	if panics > 0 {
		l.Warn("lane closed after task panics",
			"processed", processed,
			"panics", panics,
		)
		return
	}
	l.Debug("lane closed", "processed", processed)
}

// LogReplyDropped records a reply the coordinator can no longer receive.
// It is a diagnostic only; the lane keeps serving.
func (l *Logger) LogReplyDropped(job uuid.UUID, index int) {
	l.Warn("reply dropped",
		"job", job.String(),
		"index", index,
	)
}

// LogTaskPanic records a recovered task panic.
func (l *Logger) LogTaskPanic(job uuid.UUID, index int, recovered any) {
	l.Error("task panicked",
		"job", job.String(),
		"index", index,
		"panic", recovered,
	)
}
