// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file intentionally contains ONLY domain-facing types; errors and
// kernels live in dedicated files.
package matrix

import "github.com/katalvlaran/matmul/vector"

// Numeric is the element constraint shared with package vector.
type Numeric = vector.Numeric

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is immutable once constructed: no method writes into data, so it is
// safe to share between goroutines without synchronization.
type Dense[T Numeric] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}
