// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Dot returns Σ a[i]*b[i] or ErrLengthMismatch when a.Len() != b.Len().
// Two empty vectors yield the additive identity (zero value of T).
//
// Determinism:
//   - Accumulation is strictly left-to-right, so floating-point results are
//     reproducible bit for bit across runs and across lanes.
//
// Complexity: Time O(n), Space O(1).
func Dot[T Numeric](a, b Vector[T]) (T, error) {
	return DotSlices(a.data, b.data)
}

// DotSlices is Dot over raw slices.
func DotSlices[T Numeric](a, b []T) (T, error) {
	var sum T
	if len(a) != len(b) {
		return sum, fmt.Errorf("Dot(%d,%d): %w", len(a), len(b), ErrLengthMismatch)
	}
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}
