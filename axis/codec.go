// SPDX-License-Identifier: MIT

package axis

import "fmt"

// Flatten folds values into a mixed-radix offset: off = off*extents[i] + values[i].
// The first value is the most significant digit. An empty group flattens to 0.
//
// Errors: ErrShapeMismatch on a length mismatch, ErrOutOfRange when a value
// is outside [0, extent).
func Flatten(values, extents []int) (int, error) {
	if len(values) != len(extents) {
		return 0, fmt.Errorf("Flatten: %d values for %d extents: %w", len(values), len(extents), ErrShapeMismatch)
	}
	off := 0
	for i, v := range values {
		if v < 0 || v >= extents[i] {
			return 0, fmt.Errorf("Flatten: value %d of digit %d outside [0,%d): %w", v, i, extents[i], ErrOutOfRange)
		}
		off = off*extents[i] + v
	}

	return off, nil
}

// Unflatten is the inverse of Flatten; it writes the digits of off into dst.
//
// Errors: ErrShapeMismatch when dst is too short, ErrOutOfRange when off is
// outside [0, ∏extents).
func Unflatten(off int, extents, dst []int) error {
	if len(dst) < len(extents) {
		return fmt.Errorf("Unflatten: destination of %d for %d extents: %w", len(dst), len(extents), ErrShapeMismatch)
	}
	if off < 0 || off >= product(extents) {
		return fmt.Errorf("Unflatten: offset %d: %w", off, ErrOutOfRange)
	}
	unflatten(off, extents, dst)

	return nil
}

// unflatten peels digits from the least significant (last) axis.
func unflatten(off int, extents, dst []int) {
	for i := len(extents) - 1; i >= 0; i-- {
		dst[i] = off % extents[i]
		off /= extents[i]
	}
}

// flatten is Flatten without validation.
func flatten(values, extents []int) int {
	off := 0
	for i, v := range values {
		off = off*extents[i] + v
	}

	return off
}

// product returns ∏ext; the empty product is 1.
func product(ext []int) int {
	n := 1
	for _, e := range ext {
		n *= e
	}

	return n
}
