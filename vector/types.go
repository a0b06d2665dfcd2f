// SPDX-License-Identifier: MIT

package vector

// Numeric is the algebraic contract for engine element types: copyable,
// zero-valued by default, closed under + and *.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Vector is a fixed-length ordered sequence of T.
// The length is fixed at construction; no method resizes or mutates it.
type Vector[T Numeric] struct {
	data []T // backing elements; never appended to
}
