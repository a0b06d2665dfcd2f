// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/vector"
)

// Multiply computes a×b on a fresh pool that lives for this call only.
//
// Implementation:
//   - Stage 1: validate operands (nil, a.Cols == b.Rows, a.Rows*b.Cols fits
//     in an int) before any lane exists.
//   - Stage 2: start the pool, fan out one task per output cell, fan in all replies.
//   - Stage 3: close and join every lane.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrBadShape
//     (no work performed).
//   - ErrLaneDisconnected, vector.ErrLengthMismatch and other reply errors
//     (fatal: no partial result), joined with any lane error from Close.
//
// Complexity:
//   - Time O(m*n*k) spread over the lanes, Space O(m*n) replies + O(m*n*k)
//     materialized columns (O(n*k) with WithColumnCache).
func Multiply[T vector.Numeric](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, engineErrorf(opMultiply, err)
	}

	o := gatherOptions(opts...)
	pool, err := newPool[T](o)
	if err != nil {
		return nil, err
	}

	out, _, err := multiply(pool, a, b, o)
	if cerr := pool.Close(); cerr != nil {
		return nil, errors.Join(err, engineErrorf(opMultiply, cerr))
	}

	return out, err
}

// Stats is a snapshot of Engine counters.
type Stats struct {
	Multiplies uint64 // calls that reached dispatch
	Failures   uint64 // calls that returned an error after validation
	Tasks      uint64 // cells dispatched
}

// Engine keeps one pool alive across multiplications. It is safe for
// concurrent use; tasks from concurrent calls interleave on the same lanes
// and each call collects only its own replies.
type Engine[T vector.Numeric] struct {
	pool *Pool[T]
	opts Options

	multiplies atomic.Uint64
	failures   atomic.Uint64
	tasks      atomic.Uint64
}

// New starts an Engine with the given options.
func New[T vector.Numeric](opts ...Option) (*Engine[T], error) {
	o := gatherOptions(opts...)
	pool, err := newPool[T](o)
	if err != nil {
		return nil, engineErrorf(opNew, err)
	}

	return &Engine[T]{pool: pool, opts: o}, nil
}

// Multiply computes a×b on the engine's pool. See the package-level Multiply
// for the error contract; ErrPoolClosed is returned after Close.
func (e *Engine[T]) Multiply(a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, engineErrorf(opMultiply, err)
	}
	if e.pool.isClosed() {
		return nil, engineErrorf(opMultiply, ErrPoolClosed)
	}

	e.multiplies.Add(1)
	out, dispatched, err := multiply(e.pool, a, b, e.opts)
	e.tasks.Add(uint64(dispatched))
	if err != nil {
		e.failures.Add(1)
	}

	return out, err
}

// Lanes returns the fixed lane count.
func (e *Engine[T]) Lanes() int { return e.pool.Lanes() }

// Stats returns a snapshot of the engine counters.
func (e *Engine[T]) Stats() Stats {
	return Stats{
		Multiplies: e.multiplies.Load(),
		Failures:   e.failures.Load(),
		Tasks:      e.tasks.Load(),
	}
}

// Close drains queued work and joins every lane. Idempotent.
func (e *Engine[T]) Close() error {
	if err := e.pool.Close(); err != nil {
		return engineErrorf(opClose, err)
	}

	return nil
}

// checkOperands holds every precondition of a multiply: non-nil operands,
// a.Cols == b.Rows and an output cell count that fits in an int. Degenerate
// operands such as n×0 and 0×n are individually valid while their product
// is not.
func checkOperands[T vector.Numeric](a, b *matrix.Dense[T]) error {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if rows, cols := a.Rows(), b.Cols(); cols != 0 && rows > math.MaxInt/cols {
		return fmt.Errorf("output %dx%d overflows int: %w", rows, cols, matrix.ErrBadShape)
	}

	return nil
}

// columnSource returns j → column j of b, either materialized per call or
// served as a row view of a once-transposed bᵀ.
func columnSource[T vector.Numeric](b *matrix.Dense[T], cached bool) (func(int) (vector.Vector[T], error), error) {
	if !cached {
		return b.Column, nil
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, err
	}

	return bt.Row, nil
}

// multiply is the fan-out/fan-in core shared by Multiply and Engine.Multiply.
// Operands have passed checkOperands, so rows*cols cannot overflow.
//
// Invariants:
//   - Every dispatched reply channel is drained, even after a failure, so no
//     lane is ever left answering a receiver that gave up.
//   - out[idx] is written only here, once, after the unique reply for idx.
// It also reports how many tasks were dispatched.
func multiply[T vector.Numeric](p *Pool[T], a, b *matrix.Dense[T], o Options) (*matrix.Dense[T], int, error) {
	start := time.Now()
	job := uuid.New()
	log := o.logger.WithJob(job)

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	total := rows * cols

	columns, err := columnSource(b, o.columnCache)
	if err != nil {
		return nil, 0, engineErrorf(opMultiply, err)
	}

	// Fan-out: row-major cell enumeration; replies[k] belongs to linear index k.
	replies := make([]chan Reply[T], 0, total)
	var firstErr error
dispatch:
	for i := 0; i < rows; i++ {
		row, err := a.Row(i)
		if err != nil {
			firstErr = cellErrorf(i, 0, err)
			break
		}
		for j := 0; j < cols; j++ {
			col, err := columns(j)
			if err != nil {
				firstErr = cellErrorf(i, j, err)
				break dispatch
			}
			ch := make(chan Reply[T], 1)
			t := task[T]{job: job, index: i*cols + j, row: row, col: col, reply: ch}
			if err = p.submit(t); err != nil {
				firstErr = cellErrorf(i, j, err)
				break dispatch
			}
			replies = append(replies, ch)
		}
	}

	// Fan-in: drain every receiver we hold.
	data := make([]T, total)
	for k, ch := range replies {
		r, ok := <-ch
		switch {
		case !ok:
			err = ErrLaneDisconnected
		case r.Err != nil:
			err = r.Err
		case r.Index < 0 || r.Index >= total:
			err = ErrReplyMisrouted
		default:
			data[r.Index] = r.Value
			continue
		}
		if firstErr == nil {
			firstErr = cellErrorf(k/cols, k%cols, err)
		}
	}

	elapsed := time.Since(start)
	o.metrics.OnMultiply(rows, cols, elapsed, firstErr)
	log.LogMultiply(rows, inner, cols, len(replies), elapsed, firstErr)
	if firstErr != nil {
		return nil, len(replies), engineErrorf(opMultiply, firstErr)
	}

	out, err := matrix.NewDense(data, rows, cols)
	if err != nil {
		return nil, len(replies), engineErrorf(opMultiply, err)
	}

	return out, len(replies), nil
}
