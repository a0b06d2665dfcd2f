// SPDX-License-Identifier: MIT

package engine

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matmul/vector"
)

// Pool is a fixed set of long-lived lanes, each with its own inbound queue.
type Pool[T vector.Numeric] struct {
	lanes   []*lane[T]
	router  Router
	metrics MetricsObserver

	group    errgroup.Group
	closed   atomic.Bool // Tracks if pool is closed
	submitMu sync.RWMutex
	closeErr error
	once     sync.Once
}

// NewPool starts a pool configured by opts (lane count, logger, metrics).
//
// Error conditions:
//   - ErrInvalidLanes if the resolved lane count is not positive.
func NewPool[T vector.Numeric](opts ...Option) (*Pool[T], error) {
	return newPool[T](gatherOptions(opts...))
}

func newPool[T vector.Numeric](o Options) (*Pool[T], error) {
	router, err := NewRouter(o.lanes)
	if err != nil {
		return nil, engineErrorf(opNewPool, err)
	}

	kernel := resolveKernel[T](o)

	p := &Pool[T]{
		lanes:   make([]*lane[T], o.lanes),
		router:  router,
		metrics: o.metrics,
	}
	for i := range p.lanes {
		l := newLane(i, kernel, o.logger, o.metrics)
		p.lanes[i] = l
		p.group.Go(l.run)
	}

	return p, nil
}

// resolveKernel returns the per-task kernel: vector.Dot unless a test
// installed an override for element type T.
func resolveKernel[T vector.Numeric](o Options) kernelFunc[T] {
	if k, ok := o.kernel.(func(row, col vector.Vector[T]) (T, error)); ok && k != nil {
		return k
	}

	return vector.Dot[T]
}

// Lanes returns the number of lanes.
func (p *Pool[T]) Lanes() int { return len(p.lanes) }

// LaneState reports the state of lane id, or LaneClosed for an unknown id.
func (p *Pool[T]) LaneState(id int) LaneState {
	if id < 0 || id >= len(p.lanes) {
		return LaneClosed
	}

	return p.lanes[id].State()
}

// Pending returns the number of queued, not yet started tasks on lane id.
func (p *Pool[T]) Pending(id int) int {
	if id < 0 || id >= len(p.lanes) {
		return 0
	}

	return p.lanes[id].inbox.len()
}

// submit routes t by its linear index and queues it. It never blocks on a
// busy lane.
//
// Error conditions:
//   - ErrPoolClosed if Close has started.
func (p *Pool[T]) submit(t task[T]) error {
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.closed.Load() {
		return ErrPoolClosed
	}
	id := p.router.Lane(t.index)
	if !p.lanes[id].inbox.push(t) {
		return ErrPoolClosed
	}
	p.metrics.OnTaskDispatched(id)

	return nil
}

// Close shuts the pool down gracefully: queued tasks are still served, then
// every lane exits and is joined. Close is idempotent and returns the first
// lane error (ErrLanePanicked) on every call.
func (p *Pool[T]) Close() error {
	p.once.Do(func() {
		p.submitMu.Lock()
		p.closed.Store(true)
		for _, l := range p.lanes {
			l.inbox.close()
		}
		p.submitMu.Unlock()

		p.closeErr = p.group.Wait()
	})

	return p.closeErr
}

// isClosed reports whether Close has started.
func (p *Pool[T]) isClosed() bool { return p.closed.Load() }
