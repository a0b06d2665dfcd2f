// Package matrix_test contains unit tests for the Dense container.
package matrix_test

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseShapeMismatch ensures data length must equal rows*cols.
func TestNewDenseShapeMismatch(t *testing.T) {
	_, err := matrix.NewDense([]int{1, 2, 3}, 2, 2) // 3 != 4
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.NewDense([]int{1, 2, 3, 4, 5}, 2, 2) // 5 != 4
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestNewDenseBadShape ensures negative dimensions are rejected.
func TestNewDenseBadShape(t *testing.T) {
	_, err := matrix.NewDense([]int{}, -1, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Zeros[float64](2, -3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseShapeOverflow rejects shapes whose cell count wraps around int.
func TestNewDenseShapeOverflow(t *testing.T) {
	const half = 1 << (bits.UintSize / 2) // half*half wraps to 0

	m, err := matrix.NewDense([]int{}, half, half)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Nil(t, m)

	z, err := matrix.Zeros[int](half, half)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Nil(t, z)

	// Large but representable degenerate shapes stay legal and safe.
	d, err := matrix.Zeros[int](half, 0)
	require.NoError(t, err)
	require.NotPanics(t, func() {
		_, err = d.Row(0)
	})
	require.NoError(t, err)
}

// TestNewDenseZeroSized allows degenerate shapes.
func TestNewDenseZeroSized(t *testing.T) {
	m, err := matrix.NewDense[int](nil, 0, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)

	z, err := matrix.Zeros[int](4, 0)
	require.NoError(t, err)
	require.Equal(t, 4, z.Rows())
	require.Equal(t, 0, z.Cols())
	require.Empty(t, z.RawData())
}

// TestNewDenseCopiesInput verifies the matrix never aliases the caller's slice.
func TestNewDenseCopiesInput(t *testing.T) {
	src := []int{1, 2, 3, 4}
	m := mustDense(t, src, 2, 2)
	src[0] = 100

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	raw := m.RawData()
	raw[1] = 100
	v, _ = m.At(0, 1)
	require.Equal(t, 2, v) // RawData is a copy as well
}

// TestAtOutOfRange ensures At returns ErrOutOfRange on invalid access.
func TestAtOutOfRange(t *testing.T) {
	m := mustDense(t, []int{1, 2, 3, 4}, 2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])
	}
}

// TestRowColumn checks row views and strided column materialization.
func TestRowColumn(t *testing.T) {
	m := mustDense(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row.Slice())

	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, 2, col.Len()) // length = rows
	require.Equal(t, []int{3, 6}, col.Slice())

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFromRows builds from literals and rejects ragged input.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.RawData())

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	empty, err := matrix.FromRows[float64](nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
}

// TestEqual compares shape and cells.
func TestEqual(t *testing.T) {
	a := mustDense(t, []int{1, 2, 3, 4}, 2, 2)
	b := mustDense(t, []int{1, 2, 3, 4}, 2, 2)
	c := mustDense(t, []int{1, 2, 3, 4}, 1, 4)
	d := mustDense(t, []int{1, 2, 3, 5}, 2, 2)

	require.True(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, c)) // same data, different shape
	require.False(t, matrix.Equal(a, d))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal[int](nil, nil))
}

// TestString keeps row grouping readable; only asserts structure.
func TestString(t *testing.T) {
	m := mustDense(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)
	require.Equal(t, "{1 2 3, 4 5 6}", m.String())
	require.Contains(t, fmt.Sprintf("%#v", m), "rows: 2, cols: 3")
}
