// SPDX-License-Identifier: MIT

package vector

import "fmt"

// New returns a Vector owning a private copy of data.
// Complexity: O(n).
func New[T Numeric](data []T) Vector[T] {
	buf := make([]T, len(data))
	copy(buf, data)

	return Vector[T]{data: buf}
}

// View wraps data without copying. The caller must not mutate data while the
// Vector is in use; matrix row views rely on this.
// Complexity: O(1).
func View[T Numeric](data []T) Vector[T] {
	// Full slice expression caps capacity so no append can reach past the view.
	return Vector[T]{data: data[:len(data):len(data)]}
}

// Len returns the fixed number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns the i-th element or ErrOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Slice returns a copy of the elements.
func (v Vector[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the vector as [a b c].
func (v Vector[T]) String() string { return fmt.Sprint(v.data) }
