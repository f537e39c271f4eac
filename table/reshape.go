// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlprob/axis"
)

// ReshapeDimensions resizes the table to the given conditional (row) and
// posterior (column) extents, discarding all data.
//
// A static table accepts only its own extents and is then left unchanged.
//
// Errors: ErrShapeMismatch on a count mismatch or a static conflict,
// ErrInvalidExtent on a non-positive extent.
func (t *Table) ReshapeDimensions(rowExtents, colExtents []int) error {
	if t.list.IsStatic() {
		if !slices.Equal(rowExtents, t.shape.RowExtents()) || !slices.Equal(colExtents, t.shape.ColExtents()) {
			return tableErrorf("ReshapeDimensions", fmt.Errorf("%v | %v on static %v: %w",
				colExtents, rowExtents, t.shape, ErrShapeMismatch))
		}

		return nil
	}
	if len(rowExtents) != t.list.Conditionals() || len(colExtents) != t.list.Posteriors() {
		return tableErrorf("ReshapeDimensions", fmt.Errorf("%v | %v for %v: %w",
			colExtents, rowExtents, t.list, ErrShapeMismatch))
	}
	s, err := axis.NewShape(t.list, append(slices.Clone(colExtents), rowExtents...)...)
	if err != nil {
		return tableErrorf("ReshapeDimensions", err)
	}
	fresh, err := fromShape(t.list, s)
	if err != nil {
		return tableErrorf("ReshapeDimensions", err)
	}
	*t = *fresh

	return nil
}

// Reshape resizes a dynamic table to new extents (posterior group first),
// keeping every value whose index is still addressable. New cells are 0.
// Rows are renormalized afterwards.
//
// Errors: ErrStaticReshape for static tables, ErrShapeMismatch or
// ErrInvalidExtent for bad extents.
func (t *Table) Reshape(extents ...int) error {
	if t.list.IsStatic() {
		return tableErrorf("Reshape", ErrStaticReshape)
	}
	s, err := axis.NewShape(t.list, extents...)
	if err != nil {
		return tableErrorf("Reshape", err)
	}
	next, err := fromShape(t.list, s)
	if err != nil {
		return tableErrorf("Reshape", err)
	}
	t.Each(func(idx []int, v float64) {
		if s.Contains(idx) {
			*next.CellRef(idx) = v
		}
	})
	next.Normalize()
	*t = *next

	return nil
}
