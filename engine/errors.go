// SPDX-License-Identifier: MIT
// Package engine: sentinel error set.
// Every message is prefixed with "engine: ". Matrix precondition failures are
// surfaced with the matrix sentinels (matrix.ErrDimensionMismatch,
// matrix.ErrNilMatrix) wrapped in engine context.

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLanes is returned when a pool is requested with lanes <= 0.
	ErrInvalidLanes = errors.New("engine: lane count must be > 0")

	// ErrPoolClosed is returned when work is submitted after Close.
	ErrPoolClosed = errors.New("engine: pool closed")

	// ErrLaneDisconnected signals that a reply channel was closed before a
	// value arrived: the lane serving that task died mid-task.
	ErrLaneDisconnected = errors.New("engine: lane disconnected before reply")

	// ErrLanePanicked is reported by Close for every lane that recovered from
	// a panicking task.
	ErrLanePanicked = errors.New("engine: lane recovered from task panic")

	// ErrReplyMisrouted signals a reply whose linear index lies outside the
	// output buffer.
	ErrReplyMisrouted = errors.New("engine: reply index out of range")
)

// Operation tags for unified error wrapping.
const (
	opMultiply = "Multiply"
	opNewPool  = "NewPool"
	opNew      = "New"
	opClose    = "Close"
)

// engineErrorf wraps err with an operation tag. Use only when err != nil.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("engine.%s: %w", tag, err)
}

// cellErrorf attaches output-cell coordinates to an in-flight failure.
func cellErrorf(row, col int, err error) error {
	return fmt.Errorf("cell(%d,%d): %w", row, col, err)
}
