// SPDX-License-Identifier: MIT

package engine

import (
	"sync/atomic"
	"time"
)

// MetricsObserver receives engine events. Implement it to integrate with a
// monitoring system; see package prommetrics for Prometheus.
//
// Methods are invoked from lane goroutines and from the coordinator, so
// implementations must be safe for concurrent use.
type MetricsObserver interface {
	// OnTaskDispatched is called after a task is queued on lane.
	OnTaskDispatched(lane int)

	// OnTaskCompleted is called after lane finished a task; err is nil on success.
	OnTaskCompleted(lane int, duration time.Duration, err error)

	// OnMultiply is called once per multiplication with the output shape.
	OnMultiply(rows, cols int, duration time.Duration, err error)
}

// NoopObserver is a no-op implementation of MetricsObserver.
type NoopObserver struct{}

func (NoopObserver) OnTaskDispatched(int)                      {}
func (NoopObserver) OnTaskCompleted(int, time.Duration, error) {}
func (NoopObserver) OnMultiply(int, int, time.Duration, error) {}

// BasicObserver provides simple in-memory counters.
// Useful for tests and basic monitoring without external dependencies.
type BasicObserver struct {
	Dispatched     atomic.Int64
	Completed      atomic.Int64
	TaskErrors     atomic.Int64
	TaskTotalNanos atomic.Int64
	Multiplies     atomic.Int64
	MultiplyErrors atomic.Int64
}

// OnTaskDispatched implements MetricsObserver.
func (b *BasicObserver) OnTaskDispatched(int) { b.Dispatched.Add(1) }

// OnTaskCompleted implements MetricsObserver.
func (b *BasicObserver) OnTaskCompleted(_ int, d time.Duration, err error) {
	b.Completed.Add(1)
	b.TaskTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		b.TaskErrors.Add(1)
	}
}

// OnMultiply implements MetricsObserver.
func (b *BasicObserver) OnMultiply(_, _ int, _ time.Duration, err error) {
	b.Multiplies.Add(1)
	if err != nil {
		b.MultiplyErrors.Add(1)
	}
}

var (
	_ MetricsObserver = NoopObserver{}
	_ MetricsObserver = (*BasicObserver)(nil)
)
