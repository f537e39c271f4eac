// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"strings"
)

// List is an ordered sequence of axes with a divider.
// Axes before the divider are posterior (columns); axes after it are
// conditional (rows). A List without conditional axes is unconditioned.
//
// Lists are immutable values: every builder returns a fresh List.
type List struct {
	axes []Axis
	post int // number of posterior axes == divider position
}

// Of builds an unconditioned list.
func Of(axes ...Axis) List {
	cp := make([]Axis, len(axes))
	copy(cp, axes)

	return List{axes: cp, post: len(cp)}
}

// NewList builds a list from explicit posterior and conditional groups.
func NewList(posterior, conditional []Axis) List {
	cp := make([]Axis, 0, len(posterior)+len(conditional))
	cp = append(cp, posterior...)
	cp = append(cp, conditional...)

	return List{axes: cp, post: len(posterior)}
}

// Given appends conditional axes: axis.Of(X).Given(Y) reads "X given Y".
// On a list that is already conditional the axes join the conditional group.
func (l List) Given(axes ...Axis) List {
	return NewList(l.axes[:l.post], append(l.ConditionalAxes(), axes...))
}

// Len returns the total number of axes P+C.
func (l List) Len() int { return len(l.axes) }

// Posteriors returns P, the number of posterior axes (divider position).
func (l List) Posteriors() int { return l.post }

// Conditionals returns C, the number of conditional axes.
func (l List) Conditionals() int { return len(l.axes) - l.post }

// IsConditional reports whether the list has conditional axes.
func (l List) IsConditional() bool { return l.post < len(l.axes) }

// At returns the axis at expanded position i (divider not counted).
// It panics when i is out of range, like slice indexing.
func (l List) At(i int) Axis { return l.axes[i] }

// Axes returns a copy of all axes, posterior group first.
func (l List) Axes() []Axis {
	cp := make([]Axis, len(l.axes))
	copy(cp, l.axes)

	return cp
}

// PosteriorAxes returns a copy of the posterior group.
func (l List) PosteriorAxes() []Axis {
	cp := make([]Axis, l.post)
	copy(cp, l.axes[:l.post])

	return cp
}

// ConditionalAxes returns a copy of the conditional group.
func (l List) ConditionalAxes() []Axis {
	cp := make([]Axis, len(l.axes)-l.post)
	copy(cp, l.axes[l.post:])

	return cp
}

// Names returns the axis names in order.
func (l List) Names() []string {
	names := make([]string, len(l.axes))
	for i, a := range l.axes {
		names[i] = a.name
	}

	return names
}

// IsStatic reports whether the list holds static axes. It is meaningful
// only for valid lists, which are homogeneous.
func (l List) IsStatic() bool { return len(l.axes) > 0 && l.axes[0].static }

// StaticExtents returns the extents of a static list, posterior group first.
func (l List) StaticExtents() []int {
	ext := make([]int, len(l.axes))
	for i, a := range l.axes {
		ext[i] = a.extent
	}

	return ext
}

// Equal reports whether both lists hold the same axes with the same divider.
func (l List) Equal(o List) bool {
	return l.post == o.post && SameAxes(l.axes, o.axes)
}

// Validate checks that the list is non-empty, homogeneous (all static or all
// dynamic), that every axis is named, and that static extents are positive.
func (l List) Validate() error {
	if len(l.axes) == 0 {
		return ErrEmptyAxisList
	}
	static := l.axes[0].static
	for i, a := range l.axes {
		if err := a.validate(); err != nil {
			return fmt.Errorf("axis %d (%q): %w", i, a.name, err)
		}
		if a.static != static {
			return fmt.Errorf("axis %d (%q): %w", i, a.name, ErrMixedAxes)
		}
	}

	return nil
}

// Select derives the list kept by a marginalization over the given expanded
// positions. Selected positions below P form the posterior group and the rest
// the conditional group, each in the order given.
func (l List) Select(positions ...int) (List, error) {
	post, err := validateSelection(l, positions)
	if err != nil {
		return List{}, err
	}
	axes := make([]Axis, len(positions))
	for i, p := range positions {
		axes[i] = l.axes[p]
	}

	return List{axes: axes, post: post}, nil
}

// String renders the list as "X Y | Z".
func (l List) String() string {
	var b strings.Builder
	for i, a := range l.axes {
		if i == l.post && i > 0 {
			b.WriteString(" |")
		} else if i == l.post {
			b.WriteString("|")
		}
		if i > 0 || i == l.post {
			b.WriteByte(' ')
		}
		b.WriteString(a.name)
	}

	return b.String()
}
