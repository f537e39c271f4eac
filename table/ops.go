// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/matrix"
)

// Normalize rescales every row to sum 1. Rows summing to 0 are untouched.
func (t *Table) Normalize() {
	_, _ = matrix.NormalizeRows(t.data) // t.data is never nil
}

// Sum returns the total of all cells.
func (t *Table) Sum() float64 {
	s, _ := matrix.Total(t.data)

	return s
}

// RowSums returns the total of each row, one entry per conditioning
// context in row-offset order. An unconditioned table has one row.
func (t *Table) RowSums() []float64 {
	sums, _ := matrix.RowSums(t.data)

	return sums
}

// SumByConditional returns the row totals as an unconditioned table over the
// conditional axes: cell c holds the sum of p(·|c). A normalized conditional
// table yields all ones.
//
// Errors: ErrNotConditional for unconditioned tables.
func (t *Table) SumByConditional() (*Table, error) {
	const op = "SumByConditional"
	if !t.IsConditional() {
		return nil, tableErrorf(op, ErrNotConditional)
	}
	out, err := New(axis.Of(t.list.ConditionalAxes()...), t.shape.RowExtents()...)
	if err != nil {
		return nil, tableErrorf(op, err)
	}
	// Row offsets and the column offsets of out share one fold over the
	// conditional extents.
	for row, s := range t.RowSums() {
		if err = out.data.Set(0, row, s); err != nil {
			return nil, tableErrorf(op, err)
		}
	}

	return out, nil
}

// Fill sets every cell to v.
// Errors: matrix.ErrNaNInf for a non-finite v; the table is then unchanged.
func (t *Table) Fill(v float64) error {
	if err := t.data.Fill(v); err != nil {
		return tableErrorf("Fill", err)
	}

	return nil
}

// Map replaces every cell v by f(v) in place.
// Errors: matrix.ErrNaNInf when f yields a non-finite value; the table is
// then unchanged.
func (t *Table) Map(f func(v float64) float64) error {
	if err := t.data.Apply(func(_, _ int, v float64) float64 { return f(v) }); err != nil {
		return tableErrorf("Map", err)
	}

	return nil
}

// MapCopy is Map on a copy; t is not modified.
func (t *Table) MapCopy(f func(v float64) float64) (*Table, error) {
	out := t.Clone()
	if err := out.Map(f); err != nil {
		return nil, err
	}

	return out, nil
}

// MapByConditional replaces every row by f applied to that row viewed as a
// table over the posterior axes. f must return a table of the same posterior
// list and extents.
//
// Errors: ErrShapeMismatch when f changes the shape, ErrEmptyAxisList when the
// table has no posterior axes, or any error returned by f. On error the table
// is unchanged.
func (t *Table) MapByConditional(f func(post *Table) (*Table, error)) error {
	next := t.data.CloneDense()
	for row := 0; row < t.Rows(); row++ {
		in, err := t.rowTable(row)
		if err != nil {
			return tableErrorf("MapByConditional", err)
		}
		out, err := f(in)
		if err != nil {
			return tableErrorf("MapByConditional", err)
		}
		if out == nil || !out.list.Equal(in.list) || !out.shape.Equal(in.shape) {
			return tableErrorf("MapByConditional", fmt.Errorf("row %d: %w", row, ErrShapeMismatch))
		}
		for col := 0; col < t.Cols(); col++ {
			v, _ := out.data.At(0, col)
			if err = next.Set(row, col, v); err != nil {
				return tableErrorf("MapByConditional", err)
			}
		}
	}
	t.data = next

	return nil
}

// MapCopyByConditional is MapByConditional on a copy.
func (t *Table) MapCopyByConditional(f func(post *Table) (*Table, error)) (*Table, error) {
	out := t.Clone()
	if err := out.MapByConditional(f); err != nil {
		return nil, err
	}

	return out, nil
}

// PosteriorSlice returns the row selected by the conditional events as an
// unconditioned table over the posterior axes.
//
// Errors: ErrAxisMismatch when events do not name the conditional axes in
// order, ErrOutOfRange for a value outside its extent, ErrEmptyAxisList when
// the table has no posterior axes.
func (t *Table) PosteriorSlice(events ...axis.Event) (*Table, error) {
	if err := axis.ValidateEvents(t.list.ConditionalAxes(), events); err != nil {
		return nil, tableErrorf(ctxSlice, err)
	}
	cond := make([]int, len(events))
	for i, e := range events {
		cond[i] = e.Value
	}
	row, err := axis.Flatten(cond, t.shape.RowExtents())
	if err != nil {
		return nil, tableErrorf(ctxSlice, err)
	}
	out, err := t.rowTable(row)
	if err != nil {
		return nil, tableErrorf(ctxSlice, err)
	}

	return out, nil
}

// rowTable copies row into a fresh table over the posterior axes.
func (t *Table) rowTable(row int) (*Table, error) {
	l := axis.Of(t.list.PosteriorAxes()...)
	out, err := New(l, t.shape.ColExtents()...)
	if err != nil {
		return nil, err
	}
	vals, err := t.data.Row(row)
	if err != nil {
		return nil, err
	}
	for col, v := range vals {
		if err = out.data.Set(0, col, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}
