// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/matmul/vector"
)

// Reply is the single result of one task, tagged with its linear index so
// it self-locates in the output buffer.
type Reply[T vector.Numeric] struct {
	Index int
	Value T
	Err   error
}

// task is one output cell's computation. The coordinator owns it until it is
// queued; the lane owns it until the reply is sent.
type task[T vector.Numeric] struct {
	job   uuid.UUID
	index int
	row   vector.Vector[T]
	col   vector.Vector[T]
	reply chan<- Reply[T] // cap 1, used once
}

// kernelFunc computes one cell.
type kernelFunc[T vector.Numeric] func(row, col vector.Vector[T]) (T, error)
