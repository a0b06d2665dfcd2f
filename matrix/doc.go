// Package matrix offers the dense row-major container consumed by the
// concurrent multiply engine, plus the sequential reference kernels.
//
// The matrix package provides:
//
//   - Dense[T], an immutable r×c row-major buffer with safe accessors.
//   - Row(i) as a no-copy vector view and Column(j) as a materialized copy
//     (columns are strided in row-major storage).
//   - Transpose and the sequential triple-loop Mul, used as the oracle for
//     the parallel engine and as a column cache source.
//   - Canonical validators returning "matrix: ..." sentinels.
//
// See the examples in this package and in engine for usage patterns.
package matrix
