// SPDX-License-Identifier: MIT

// Package vector provides the fixed-length numeric vector and the dot-product
// reduction used as the per-cell kernel of the concurrent multiply engine.
//
// What & Why:
//
//	A Vector is an immutable, fixed-length view over a slice of a Numeric
//	element type. Numeric is a compile-time capability constraint: every
//	instantiation supports copy, zero value, +, += and *, which is exactly
//	what a dot product over a ring-like type requires.
//
// Complexity:
//
//	New copies in O(n); View wraps in O(1); Dot runs in O(n), strictly left
//	to right, with no intra-product parallelism.
package vector
