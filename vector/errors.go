// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ". Callers match with errors.Is.

package vector

import "errors"

var (
	// ErrLengthMismatch is returned by Dot when operand lengths differ.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrOutOfRange indicates an element index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)
