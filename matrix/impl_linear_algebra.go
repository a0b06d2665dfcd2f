// SPDX-License-Identifier: MIT
// Package matrix provides the sequential reference kernels: Transpose and Mul.
// Both validate fail-fast and never mutate their operands.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the product a×b with the sequential triple loop.
// It is the oracle the concurrent engine is tested against.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i-j-k loop; each cell accumulates left to right over k, the
//     same order vector.Dot uses, so results match the engine bit for bit.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n).
func Mul[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	out := make([]T, aRows*bCols)
	var (
		i, j, k int // loop iterators
		acc     T
		zero    T
	)
	for i = 0; i < aRows; i++ {
		rowOff := i * aCols
		for j = 0; j < bCols; j++ {
			acc = zero
			for k = 0; k < aCols; k++ {
				acc += a.data[rowOff+k] * b.data[k*bCols+j]
			}
			out[i*bCols+j] = acc
		}
	}

	return &Dense[T]{r: aRows, c: bCols, data: out}, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Row j of the result equals Column(j) of m, which lets callers materialize
// every column once instead of once per cell.
//
// Errors: ErrNilMatrix (wrapped with "Transpose").
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Numeric](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	out := make([]T, rows*cols)
	// data[i*cols + j] → out[j*rows + i]
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			out[j*rows+i] = m.data[base+j]
		}
	}

	return &Dense[T]{r: cols, c: rows, data: out}, nil
}
