// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/matmul/vector"
)

// LaneState is the observable state of one lane.
type LaneState int32

const (
	// LaneIdle: queue empty, goroutine blocked waiting for work.
	LaneIdle LaneState = iota
	// LaneProcessing: a task is dequeued and being computed.
	LaneProcessing
	// LaneClosed: queue closed and drained; the goroutine has exited.
	LaneClosed
)

func (s LaneState) String() string {
	switch s {
	case LaneIdle:
		return "Idle"
	case LaneProcessing:
		return "Processing"
	case LaneClosed:
		return "Closed"
	default:
		return fmt.Sprintf("LaneState(%d)", int32(s))
	}
}

// lane is one worker goroutine plus its dedicated inbound queue.
type lane[T vector.Numeric] struct {
	id      int
	inbox   *inbox[task[T]]
	kernel  kernelFunc[T]
	log     *Logger
	metrics MetricsObserver

	state     atomic.Int32
	processed atomic.Int64
	panics    atomic.Int64
}

func newLane[T vector.Numeric](id int, kernel kernelFunc[T], log *Logger, metrics MetricsObserver) *lane[T] {
	return &lane[T]{
		id:      id,
		inbox:   newInbox[task[T]](),
		kernel:  kernel,
		log:     log.WithLane(id),
		metrics: metrics,
	}
}

// run loops receive → compute → reply until the inbox is closed and empty.
// It returns ErrLanePanicked (wrapped) if any task panicked.
func (l *lane[T]) run() error {
	defer l.state.Store(int32(LaneClosed))

	for {
		t, ok := l.inbox.pop()
		if !ok {
			break
		}
		l.state.Store(int32(LaneProcessing))
		l.process(t)
		l.processed.Add(1)
		l.state.Store(int32(LaneIdle))
	}

	panics := l.panics.Load()
	l.log.LogLaneExit(l.processed.Load(), panics)
	if panics > 0 {
		return fmt.Errorf("lane %d: %d task(s): %w", l.id, panics, ErrLanePanicked)
	}

	return nil
}

// process computes one task and delivers its reply.
// A panicking kernel closes the reply channel without a value, which the
// coordinator observes as ErrLaneDisconnected; the lane itself keeps serving.
func (l *lane[T]) process(t task[T]) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			l.panics.Add(1)
			l.log.LogTaskPanic(t.job, t.index, r)
			l.metrics.OnTaskCompleted(l.id, time.Since(start), ErrLanePanicked)
			close(t.reply)
		}
	}()

	value, err := l.kernel(t.row, t.col)
	l.metrics.OnTaskCompleted(l.id, time.Since(start), err)

	// Never block. The default branch is unreachable while every task owns a
	// fresh cap-1 channel with exactly one send.
	select {
	case t.reply <- Reply[T]{Index: t.index, Value: value, Err: err}:
	default:
		l.log.LogReplyDropped(t.job, t.index)
	}
}

// State returns the lane's current state.
func (l *lane[T]) State() LaneState { return LaneState(l.state.Load()) }
