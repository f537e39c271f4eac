// SPDX-License-Identifier: MIT

package axis

import "strconv"

// Axis is a named dimension of a table.
//
// A static axis carries its extent; a dynamic axis receives it when a table
// is sized. Axes compare by value: two axes are the same random variable when
// name, kind and (for static axes) extent agree.
type Axis struct {
	name   string // identity
	extent int    // static extent; 0 for dynamic axes
	static bool   // true when extent is fixed at definition
}

// Static defines an axis whose extent is fixed.
// The extent is validated when the axis enters a List.
func Static(name string, extent int) Axis {
	return Axis{name: name, extent: extent, static: true}
}

// Dynamic defines an axis whose extent is supplied per table.
func Dynamic(name string) Axis {
	return Axis{name: name}
}

// Name returns the axis identity.
func (a Axis) Name() string { return a.name }

// Extent returns the static extent, or 0 for a dynamic axis.
func (a Axis) Extent() int { return a.extent }

// IsStatic reports whether the extent is fixed at definition.
func (a Axis) IsStatic() bool { return a.static }

// Same reports whether a and b denote the same random variable.
func (a Axis) Same(b Axis) bool { return a == b }

// Is builds the event "a takes value v".
func (a Axis) Is(v int) Event { return Event{Axis: a.name, Value: v} }

// String renders the axis as its name, with the extent for static axes.
func (a Axis) String() string {
	if a.static {
		return a.name + "[" + strconv.Itoa(a.extent) + "]"
	}

	return a.name
}

// validate checks the name and, for static axes, the extent.
func (a Axis) validate() error {
	if a.name == "" {
		return ErrUnnamedAxis
	}
	if a.static && a.extent <= 0 {
		return ErrInvalidExtent
	}

	return nil
}

// Event is a concrete value on a named axis.
type Event struct {
	Axis  string // axis name
	Value int    // index in [0, extent)
}

// String renders the event as "name=value".
func (e Event) String() string { return e.Axis + "=" + strconv.Itoa(e.Value) }

// SameAxes reports whether two axis groups match position by position.
func SameAxes(a, b []Axis) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}

	return true
}
