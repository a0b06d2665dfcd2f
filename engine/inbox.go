// SPDX-License-Identifier: MIT

package engine

import "sync"

// inbox is an unbounded FIFO. push never blocks, so dispatch never waits on
// a busy lane; pop blocks while the queue is open and empty.
type inbox[E any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []E
	closed bool
}

func newInbox[E any]() *inbox[E] {
	q := &inbox[E]{}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// push appends e. It reports false if the inbox is already closed.
func (q *inbox[E]) push(e E) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, e)
	q.mu.Unlock()
	q.cond.Signal()

	return true
}

// pop removes the oldest element. ok is false only once the inbox is both
// closed and empty.
func (q *inbox[E]) pop() (e E, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return e, false
	}
	e = q.items[0]
	var zero E
	q.items[0] = zero // release for GC
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}

	return e, true
}

// close stops further pushes and wakes every waiter. Idempotent.
func (q *inbox[E]) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// len returns the number of queued elements.
func (q *inbox[E]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
