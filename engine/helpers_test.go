package engine_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/matmul/engine"
	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// mustInts returns a deterministic r×c matrix of small ints.
func mustInts(tb testing.TB, rows, cols int, seed int64) *matrix.Dense[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = rng.Intn(21) - 10
	}
	m, err := matrix.NewDense(data, rows, cols)
	require.NoError(tb, err)

	return m
}

// mustFloats returns a deterministic r×c matrix of floats in [-1, 1).
func mustFloats(tb testing.TB, rows, cols int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDense(data, rows, cols)
	require.NoError(tb, err)

	return m
}

// mustRows builds a matrix from literal rows.
func mustRows[T matrix.Numeric](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// laneCounter counts dispatches per lane for up to three lanes.
type laneCounter struct {
	engine.NoopObserver
	mu     sync.Mutex
	counts [3]int
}

func (c *laneCounter) OnTaskDispatched(lane int) {
	c.mu.Lock()
	c.counts[lane]++
	c.mu.Unlock()
}

func (c *laneCounter) snapshot() [3]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counts
}
