// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Column return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Row is a no-copy view; Column is materialized because columns are strided.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At: O(1); Row: O(1); Column: O(r); RawData: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/matmul/vector"
)

// ---------- error context tags ----------

const (
	ctxNew    = "NewDense" // ctor tag used in error wrappers
	ctxRows   = "FromRows" // ctor tag used in error wrappers
	ctxAt     = "At"       // method tag used in error wrappers
	ctxRow    = "Row"      // method tag used in error wrappers
	ctxColumn = "Column"   // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtOpen    = "{"
	_fmtClose   = "}"
	_fmtCellSep = " "
	_fmtRowSep  = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// checkShape rejects negative dimensions and shapes whose cell count rows*cols
// does not fit in an int.
func checkShape(tag string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return denseErrorf(tag, rows, cols, ErrBadShape)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return denseErrorf(tag, rows, cols, fmt.Errorf("rows*cols overflows int: %w", ErrBadShape))
	}

	return nil
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates a rows×cols matrix holding a private copy of data.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: reject negative dimensions and rows*cols overflow (ErrBadShape).
//   - Stage 2: require len(data) == rows*cols (ErrShapeMismatch).
//   - Stage 3: copy data into a fresh buffer.
//
// Behavior highlights:
//   - Zero-sized shapes (0×n, n×0) are legal; they are needed for degenerate
//     multiplications and for returning an empty product.
//   - The caller may reuse data afterwards; the matrix never aliases it.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch (wrapped with "NewDense(r,c)").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Numeric](data []T, rows, cols int) (*Dense[T], error) {
	if err := checkShape(ctxNew, rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(ctxNew, rows, cols,
			fmt.Errorf("len(data)=%d: %w", len(data), ErrShapeMismatch))
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Zeros returns a rows×cols matrix filled with the zero value of T.
// Complexity: O(r*c).
func Zeros[T Numeric](rows, cols int) (*Dense[T], error) {
	if err := checkShape(ctxNew, rows, cols); err != nil {
		return nil, err
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a matrix from literal row slices, e.g. {{1,2,3},{4,5,6}}.
// All rows must have equal length, otherwise ErrShapeMismatch.
// An empty input yields a 0×0 matrix.
func FromRows[T Numeric](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{}, nil
	}
	cols := len(rows[0])
	buf := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf(ctxRows, i, len(row), ErrShapeMismatch)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: len(rows), c: cols, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	// Row-major offset: i*c + j.
	return m.data[row*m.c+col], nil
}

// Row returns a view of the contiguous elements [i*c, (i+1)*c).
// No copy is made; the view stays valid because Dense is immutable.
func (m *Dense[T]) Row(i int) (vector.Vector[T], error) {
	if i < 0 || i >= m.r {
		return vector.Vector[T]{}, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	off := i * m.c

	return vector.View(m.data[off : off+m.c]), nil
}

// Column returns a freshly materialized vector {data[j], data[j+c], ...}
// of length Rows(). Complexity: O(r) time and memory.
func (m *Dense[T]) Column(j int) (vector.Vector[T], error) {
	if j < 0 || j >= m.c {
		return vector.Vector[T]{}, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	col := make([]T, m.r)
	for i, off := 0, j; i < m.r; i, off = i+1, off+m.c {
		col[i] = m.data[off]
	}

	return vector.View(col), nil
}

// RawData returns a copy of the row-major buffer.
func (m *Dense[T]) RawData() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether a and b have the same shape and identical cells.
// Two nil matrices are equal; a nil and a non-nil are not.
func Equal[T Numeric](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders a 2×3 matrix as {1 2 3, 4 5 6}.
// Formatting is a presentation detail; compare values, not text.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowSep)
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtCellSep)
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// GoString implements fmt.GoStringer for %#v debugging output.
func (m *Dense[T]) GoString() string {
	return fmt.Sprintf("Dense{data: %s, rows: %d, cols: %d}", m.String(), m.r, m.c)
}
