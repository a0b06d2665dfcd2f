// SPDX-License-Identifier: MIT

package engine

import "github.com/katalvlaran/matmul/vector"

// Test-Bridge (white-box) for engine_test.
//
// Purpose:
//   - Let external tests replace the per-task kernel (fault injection)
//     without widening the production API.

// WithKernel overrides the dot-product kernel for every lane of a pool.
func WithKernel[T vector.Numeric](k func(row, col vector.Vector[T]) (T, error)) Option {
	return func(o *Options) { o.kernel = k }
}

// ResolvedLanes exposes the effective lane count after applying opts.
func ResolvedLanes(opts ...Option) int { return gatherOptions(opts...).lanes }
