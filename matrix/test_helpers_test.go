// Package matrix_test: shared helpers for deterministic test inputs.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a matrix or fails the test.
func mustDense[T matrix.Numeric](tb testing.TB, data []T, rows, cols int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense(data, rows, cols)
	require.NoError(tb, err)

	return m
}

// randInts returns an r×c matrix of small ints from a fixed seed.
func randInts(tb testing.TB, rows, cols int, seed int64) *matrix.Dense[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = rng.Intn(21) - 10 // [-10, 10]
	}

	return mustDense(tb, data, rows, cols)
}
