// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/matrix"
)

// Table is a dense probability table over an axis list.
//
// Invariant: data is shape.Rows() × shape.Cols() and shape sizes list.
type Table struct {
	list  axis.List
	shape axis.Shape
	data  *matrix.Dense
}

// New allocates a zero table over l.
//
// Static lists size themselves (extents may be omitted or must match).
// Dynamic lists take one extent per axis, posterior group first.
//
// Errors: ErrEmptyAxisList, ErrMixedAxes, ErrInvalidExtent, ErrShapeMismatch.
func New(l axis.List, extents ...int) (*Table, error) {
	s, err := axis.NewShape(l, extents...)
	if err != nil {
		return nil, fmt.Errorf("table.New(%v): %w", l, err)
	}

	return fromShape(l, s)
}

// fromShape allocates a zero table for an already validated list and shape.
func fromShape(l axis.List, s axis.Shape) (*Table, error) {
	d, err := matrix.NewDense(s.Rows(), s.Cols())
	if err != nil {
		return nil, fmt.Errorf("table.New(%v): %w", l, err)
	}

	return &Table{list: l, shape: s, data: d}, nil
}

// List returns the axis list.
func (t *Table) List() axis.List { return t.list }

// Shape returns the runtime extents.
func (t *Table) Shape() axis.Shape { return t.shape }

// Rows returns the number of conditioning contexts.
func (t *Table) Rows() int { return t.shape.Rows() }

// Cols returns the number of posterior combinations.
func (t *Table) Cols() int { return t.shape.Cols() }

// RowExtents returns the conditional extents.
func (t *Table) RowExtents() []int { return t.shape.RowExtents() }

// ColExtents returns the posterior extents.
func (t *Table) ColExtents() []int { return t.shape.ColExtents() }

// Extents returns all extents, posterior group first.
func (t *Table) Extents() []int { return t.shape.Extents() }

// Axis returns the axis at expanded position i; it panics when i is out of range.
func (t *Table) Axis(i int) axis.Axis { return t.list.At(i) }

// ColExtent returns the extent of the i-th posterior axis.
func (t *Table) ColExtent(i int) int { return t.shape.Extent(i) }

// RowExtent returns the extent of the i-th conditional axis.
func (t *Table) RowExtent(i int) int { return t.shape.Extent(t.list.Posteriors() + i) }

// IsConditional reports whether the table has conditional axes.
func (t *Table) IsConditional() bool { return t.list.IsConditional() }

// PosteriorAxes returns the posterior axis group.
func (t *Table) PosteriorAxes() []axis.Axis { return t.list.PosteriorAxes() }

// ConditionalAxes returns the conditional axis group.
func (t *Table) ConditionalAxes() []axis.Axis { return t.list.ConditionalAxes() }

// PosteriorGroup returns the posterior axes with their extents.
func (t *Table) PosteriorGroup() axis.Group { return axis.PosteriorGroup(t.list, t.shape) }

// ConditionalGroup returns the conditional axes with their extents.
func (t *Table) ConditionalGroup() axis.Group { return axis.ConditionalGroup(t.list, t.shape) }

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	return &Table{list: t.list, shape: t.shape, data: t.data.CloneDense()}
}

// Equal reports whether both tables have the same axes, extents and cells.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if !t.list.Equal(o.list) || !t.shape.Equal(o.shape) {
		return false
	}
	ok, err := matrix.AllClose(t.data, o.data, 0, 0)

	return err == nil && ok
}

// String renders the list, the extents and the matrix for diagnostics.
func (t *Table) String() string {
	return fmt.Sprintf("%v (%v)\n%v", t.list, t.shape, t.data)
}
