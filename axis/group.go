// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"slices"
)

// Group is one side of a divider: a run of axes with their runtime extents.
type Group struct {
	Axes    []Axis
	Extents []int
}

// PosteriorGroup pairs the posterior axes of l with the column extents of s.
func PosteriorGroup(l List, s Shape) Group {
	return Group{Axes: l.PosteriorAxes(), Extents: s.ColExtents()}
}

// ConditionalGroup pairs the conditional axes of l with the row extents of s.
func ConditionalGroup(l List, s Shape) Group {
	return Group{Axes: l.ConditionalAxes(), Extents: s.RowExtents()}
}

// Concat joins groups left to right into a fresh group.
func Concat(gs ...Group) Group {
	var out Group
	for _, g := range gs {
		out.Axes = append(out.Axes, g.Axes...)
		out.Extents = append(out.Extents, g.Extents...)
	}

	return out
}

// Len returns the number of axes.
func (g Group) Len() int { return len(g.Axes) }

// Split cuts g after n axes; it panics when n is out of range.
func (g Group) Split(n int) (Group, Group) {
	return Group{Axes: g.Axes[:n], Extents: g.Extents[:n]},
		Group{Axes: g.Axes[n:], Extents: g.Extents[n:]}
}

// Match requires g to equal want: same axes in order (ErrAxisMismatch), then
// same extents (ErrShapeMismatch).
func (g Group) Match(want Group) error {
	if !SameAxes(g.Axes, want.Axes) {
		return fmt.Errorf("axes %v, want %v: %w", g.Axes, want.Axes, ErrAxisMismatch)
	}
	if !slices.Equal(g.Extents, want.Extents) {
		return fmt.Errorf("extents %v, want %v: %w", g.Extents, want.Extents, ErrShapeMismatch)
	}

	return nil
}
