// SPDX-License-Identifier: MIT

// Package engine: functional configuration for pools and multiplications.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package engine

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLanes is the fixed worker-lane count used when WithLanes is not given.
	DefaultLanes = 4

	// DefaultColumnCache controls whether Multiply transposes b once per call
	// and serves columns as row views of bᵀ, instead of materializing a column
	// per task.
	DefaultColumnCache = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLanesInvalid = "engine: WithLanes: n must be > 0"
	panicLoggerNil    = "engine: WithLogger: logger must be non-nil"
	panicObserverNil  = "engine: WithMetrics: observer must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	lanes       int             // > 0; DefaultLanes
	columnCache bool            // DefaultColumnCache
	logger      *Logger         // never nil after gatherOptions
	metrics     MetricsObserver // never nil after gatherOptions

	// kernel is a test-only hook, set through WithKernel in export_test.go.
	// It holds a func(row, col vector.Vector[T]) (T, error) for the pool's
	// element type and is resolved by resolveKernel; nil or a mismatched
	// element type means vector.Dot. Production code never sets it.
	kernel any
}

// WithLanes sets the number of worker lanes.
// Panics when n <= 0.
func WithLanes(n int) Option {
	if n <= 0 {
		panic(panicLanesInvalid)
	}

	return func(o *Options) { o.lanes = n }
}

// WithLogger routes engine diagnostics to l.
func WithLogger(l *Logger) Option {
	if l == nil || l.Logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithMetrics installs a MetricsObserver. The observer is called from lane
// goroutines and must be safe for concurrent use.
func WithMetrics(m MetricsObserver) Option {
	if m == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.metrics = m }
}

// WithColumnCache toggles the transpose-once column cache.
func WithColumnCache(enabled bool) Option {
	return func(o *Options) { o.columnCache = enabled }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		lanes:       DefaultLanes,
		columnCache: DefaultColumnCache,
		logger:      NoopLogger(),
		metrics:     NoopObserver{},
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
