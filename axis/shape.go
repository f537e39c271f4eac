// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Shape holds the runtime extents of a List split at its divider.
// cols lists the posterior extents, rows the conditional extents.
type Shape struct {
	cols   []int
	rows   []int
	nc, nr int // ∏cols, ∏rows (1 for an empty group)
}

// NewShape sizes l.
//
// For a static list, extents may be omitted; when given they must equal the
// static extents. For a dynamic list, one positive extent per axis is required,
// posterior group first.
//
// Errors: the list's own validation errors, ErrShapeMismatch on a wrong count
// or a static conflict, ErrInvalidExtent on a non-positive extent.
func NewShape(l List, extents ...int) (Shape, error) {
	if err := l.Validate(); err != nil {
		return Shape{}, err
	}
	if l.IsStatic() {
		want := l.StaticExtents()
		if len(extents) != 0 && !slices.Equal(extents, want) {
			return Shape{}, fmt.Errorf("NewShape: extents %v for static list %v: %w", extents, want, ErrShapeMismatch)
		}
		extents = want
	}
	if len(extents) != l.Len() {
		return Shape{}, fmt.Errorf("NewShape: %d extents for %d axes: %w", len(extents), l.Len(), ErrShapeMismatch)
	}
	for i, e := range extents {
		if e <= 0 {
			return Shape{}, fmt.Errorf("NewShape: axis %q extent %d: %w", l.axes[i].name, e, ErrInvalidExtent)
		}
	}

	return fromExtents(extents, l.post), nil
}

func fromExtents(extents []int, post int) Shape {
	s := Shape{
		cols: slices.Clone(extents[:post]),
		rows: slices.Clone(extents[post:]),
	}
	s.nc, s.nr = product(s.cols), product(s.rows)

	return s
}

// Rows returns ∏ conditional extents (1 when unconditioned).
func (s Shape) Rows() int { return s.nr }

// Cols returns ∏ posterior extents (1 when there are no posterior axes).
func (s Shape) Cols() int { return s.nc }

// Size returns Rows()*Cols().
func (s Shape) Size() int { return s.nr * s.nc }

// Len returns the number of axes P+C.
func (s Shape) Len() int { return len(s.cols) + len(s.rows) }

// Posteriors returns P.
func (s Shape) Posteriors() int { return len(s.cols) }

// ColExtents returns a copy of the posterior extents.
func (s Shape) ColExtents() []int { return slices.Clone(s.cols) }

// RowExtents returns a copy of the conditional extents.
func (s Shape) RowExtents() []int { return slices.Clone(s.rows) }

// Extents returns all extents, posterior group first.
func (s Shape) Extents() []int { return append(slices.Clone(s.cols), s.rows...) }

// Extent returns the extent at expanded position i; it panics when i is out of range.
func (s Shape) Extent(i int) int {
	if i < len(s.cols) {
		return s.cols[i]
	}

	return s.rows[i-len(s.cols)]
}

// Equal reports whether both shapes have the same groups and extents.
func (s Shape) Equal(o Shape) bool {
	return slices.Equal(s.cols, o.cols) && slices.Equal(s.rows, o.rows)
}

// Select keeps the extents at the given expanded positions, the first post of
// them forming the posterior group. Positions must come from List.Select.
func (s Shape) Select(post int, positions ...int) Shape {
	ext := make([]int, len(positions))
	for i, p := range positions {
		ext[i] = s.Extent(p)
	}

	return fromExtents(ext, post)
}

// Offsets encodes a full index (posterior values then conditional values)
// into matrix coordinates.
//
// Errors: ErrShapeMismatch on a wrong index length, ErrOutOfRange on a value
// outside its extent.
func (s Shape) Offsets(idx []int) (row, col int, err error) {
	if len(idx) != s.Len() {
		return 0, 0, fmt.Errorf("Offsets: %d values for %d axes: %w", len(idx), s.Len(), ErrShapeMismatch)
	}
	p := len(s.cols)
	if col, err = Flatten(idx[:p], s.cols); err != nil {
		return 0, 0, err
	}
	if row, err = Flatten(idx[p:], s.rows); err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

// Contains reports whether idx is a valid full index.
func (s Shape) Contains(idx []int) bool {
	if len(idx) != s.Len() {
		return false
	}
	for i, v := range idx {
		if v < 0 || v >= s.Extent(i) {
			return false
		}
	}

	return true
}

// MustOffsets is Offsets for indices already known to be valid
// (produced by the iterators). It does not check bounds.
func (s Shape) MustOffsets(idx []int) (row, col int) {
	p := len(s.cols)

	return flatten(idx[p:], s.rows), flatten(idx[:p], s.cols)
}

// Decode writes the full index of cell (row, col) into dst (len >= Len()).
// Errors: ErrOutOfRange on invalid coordinates, ErrShapeMismatch on a short dst.
func (s Shape) Decode(row, col int, dst []int) error {
	if len(dst) < s.Len() {
		return fmt.Errorf("Decode: destination of %d for %d axes: %w", len(dst), s.Len(), ErrShapeMismatch)
	}
	p := len(s.cols)
	if err := Unflatten(col, s.cols, dst[:p]); err != nil {
		return err
	}

	return Unflatten(row, s.rows, dst[p:])
}

// String renders the extents as "4 4 | 2".
func (s Shape) String() string {
	var b strings.Builder
	for i, e := range s.cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(e))
	}
	if len(s.rows) > 0 {
		if len(s.cols) > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('|')
		for _, e := range s.rows {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(e))
		}
	}

	return b.String()
}
