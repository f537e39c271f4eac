// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/lvlprob/matrix"
)

// ValidateSameLayout checks that a and b are non-nil and share list and extents.
// Errors: ErrNilTable, ErrAxisMismatch, ErrShapeMismatch.
func ValidateSameLayout(a, b *Table) error {
	if a == nil || b == nil {
		return ErrNilTable
	}
	if !a.list.Equal(b.list) {
		return fmt.Errorf("%v vs %v: %w", a.list, b.list, ErrAxisMismatch)
	}
	if !a.shape.Equal(b.shape) {
		return fmt.Errorf("%v vs %v: %w", a.shape, b.shape, ErrShapeMismatch)
	}

	return nil
}

// Distance returns the L1 distance Σ|a-b| over all cells.
func Distance(a, b *Table) (float64, error) {
	if err := ValidateSameLayout(a, b); err != nil {
		return 0, fmt.Errorf("table.Distance: %w", err)
	}

	return matrix.L1Distance(a.data, b.data)
}

// AllClose reports whether every cell of a lies within atol of b.
func AllClose(a, b *Table, atol float64) (bool, error) {
	if err := ValidateSameLayout(a, b); err != nil {
		return false, fmt.Errorf("table.AllClose: %w", err)
	}

	return matrix.AllClose(a.data, b.data, 0, atol)
}
