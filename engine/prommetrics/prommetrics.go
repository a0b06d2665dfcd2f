// SPDX-License-Identifier: MIT

// Package prommetrics implements engine.MetricsObserver on top of
// prometheus/client_golang.
//
// Exposed series (namespace configurable, default "matmul"):
//
//	<ns>_tasks_dispatched_total{lane}
//	<ns>_tasks_completed_total{lane,status}
//	<ns>_task_duration_seconds
//	<ns>_multiply_duration_seconds{status}
package prommetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/matmul/engine"
)

// DefaultNamespace prefixes every metric name when New is given "".
const DefaultNamespace = "matmul"

const (
	statusOK    = "ok"
	statusError = "error"
)

// Observer implements engine.MetricsObserver.
type Observer struct {
	dispatched      *prometheus.CounterVec
	completed       *prometheus.CounterVec
	taskLatency     prometheus.Histogram
	multiplyLatency *prometheus.HistogramVec
}

var _ engine.MetricsObserver = (*Observer)(nil)

// New creates an Observer and registers its collectors with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, namespace string) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	o := &Observer{
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_dispatched_total",
			Help:      "Cell tasks queued per lane",
		}, []string{"lane"}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_completed_total",
			Help:      "Cell tasks finished per lane and status",
		}, []string{"lane", "status"}),
		taskLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_duration_seconds",
			Help:      "Latency of a single dot-product task",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}),
		multiplyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "multiply_duration_seconds",
			Help:      "Latency of a full fan-out/fan-in multiplication",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{o.dispatched, o.completed, o.taskLatency, o.multiplyLatency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// OnTaskDispatched implements engine.MetricsObserver.
func (o *Observer) OnTaskDispatched(lane int) {
	o.dispatched.WithLabelValues(strconv.Itoa(lane)).Inc()
}

// OnTaskCompleted implements engine.MetricsObserver.
func (o *Observer) OnTaskCompleted(lane int, d time.Duration, err error) {
	o.completed.WithLabelValues(strconv.Itoa(lane), status(err)).Inc()
	o.taskLatency.Observe(d.Seconds())
}

// OnMultiply implements engine.MetricsObserver.
func (o *Observer) OnMultiply(_, _ int, d time.Duration, err error) {
	o.multiplyLatency.WithLabelValues(status(err)).Observe(d.Seconds())
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusOK
}
