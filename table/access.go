// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlprob/axis"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRef   = "Ref"
	ctxSlice = "PosteriorSlice"
)

func tableErrorf(method string, err error) error {
	return fmt.Errorf("Table.%s: %w", method, err)
}

// values checks events against the list and extracts their values.
func (t *Table) values(events []axis.Event) ([]int, error) {
	if err := axis.ValidateEvents(t.list.Axes(), events); err != nil {
		return nil, err
	}
	idx := make([]int, len(events))
	for i, e := range events {
		idx[i] = e.Value
	}

	return idx, nil
}

// At returns p(events); events name every axis in list order.
// Errors: ErrAxisMismatch, ErrOutOfRange.
func (t *Table) At(events ...axis.Event) (float64, error) {
	idx, err := t.values(events)
	if err != nil {
		return 0, tableErrorf(ctxAt, err)
	}

	return t.AtIndex(idx)
}

// AtOrZero returns p(events), or 0 when the events do not address a cell.
func (t *Table) AtOrZero(events ...axis.Event) float64 {
	v, err := t.At(events...)
	if err != nil {
		return 0
	}

	return v
}

// Set stores v at events.
// Errors: ErrAxisMismatch, ErrOutOfRange, matrix.ErrNaNInf.
func (t *Table) Set(v float64, events ...axis.Event) error {
	idx, err := t.values(events)
	if err != nil {
		return tableErrorf(ctxSet, err)
	}

	return t.SetIndex(idx, v)
}

// Ref returns a writable reference to the cell at events.
// Errors: ErrAxisMismatch, ErrOutOfRange.
func (t *Table) Ref(events ...axis.Event) (*float64, error) {
	idx, err := t.values(events)
	if err != nil {
		return nil, tableErrorf(ctxRef, err)
	}

	return t.RefIndex(idx)
}

// AtIndex is At over a flat index (posterior values then conditional values).
func (t *Table) AtIndex(idx []int) (float64, error) {
	row, col, err := t.shape.Offsets(idx)
	if err != nil {
		return 0, tableErrorf(ctxAt, err)
	}

	return t.data.At(row, col)
}

// SetIndex is Set over a flat index.
func (t *Table) SetIndex(idx []int, v float64) error {
	row, col, err := t.shape.Offsets(idx)
	if err != nil {
		return tableErrorf(ctxSet, err)
	}
	if err = t.data.Set(row, col, v); err != nil {
		return tableErrorf(ctxSet, err)
	}

	return nil
}

// RefIndex is Ref over a flat index.
func (t *Table) RefIndex(idx []int) (*float64, error) {
	row, col, err := t.shape.Offsets(idx)
	if err != nil {
		return nil, tableErrorf(ctxRef, err)
	}

	return t.data.Ref(row, col)
}

// Cell reads the cell at a flat index known to be valid (as produced by the
// iterators or validated by the caller). It panics on an invalid index.
func (t *Table) Cell(idx []int) float64 {
	return *t.CellRef(idx)
}

// CellRef is the writable form of Cell. It panics on an invalid index.
func (t *Table) CellRef(idx []int) *float64 {
	row, col := t.shape.MustOffsets(idx)
	p, err := t.data.Ref(row, col)
	if err != nil {
		panic(fmt.Sprintf("table: invalid index %v for %v: %v", idx, t.shape, err))
	}

	return p
}

// Mode returns the full index and value of the largest cell. Ties resolve to
// the lowest (row, col) offset.
func (t *Table) Mode() ([]int, float64) {
	row, col, best := 0, 0, math.Inf(-1)
	t.data.Do(func(i, j int, v float64) bool {
		if v > best {
			row, col, best = i, j, v
		}
		return true
	})
	idx := make([]int, t.list.Len())
	_ = t.shape.Decode(row, col, idx) // data is sized by shape

	return idx, best
}

// Each visits every cell in forward order (first axis slowest).
// The index slice is reused between calls.
func (t *Table) Each(f func(idx []int, v float64)) {
	t.shape.Each(func(idx []int) { f(idx, t.Cell(idx)) })
}

// EachReverse visits every cell in reverse order (last axis slowest).
func (t *Table) EachReverse(f func(idx []int, v float64)) {
	t.shape.EachReverse(func(idx []int) { f(idx, t.Cell(idx)) })
}

// EachConditional visits every conditioning context.
// Errors: ErrNotConditional for unconditioned tables.
func (t *Table) EachConditional(f func(cond []int)) error {
	return t.shape.EachConditional(func(_ int, cond []int) { f(cond) })
}
