// SPDX-License-Identifier: MIT

// Package layout reads and writes YAML descriptions of a table's axes.
//
//	posterior:
//	  - {name: X, extent: 4}
//	  - {name: A, extent: 2, static: true}
//	conditional:
//	  - {name: Z, extent: 2}
package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
)

// ErrInvalid indicates a layout that does not describe a table.
var ErrInvalid = errors.New("layout: invalid")

// Axis is one declared axis.
type Axis struct {
	Name   string `yaml:"name"`
	Extent int    `yaml:"extent"`
	Static bool   `yaml:"static,omitempty"`
}

// Layout lists the posterior axes, then the conditional ones.
type Layout struct {
	Posterior   []Axis `yaml:"posterior"`
	Conditional []Axis `yaml:"conditional,omitempty"`
}

// Parse decodes a YAML layout.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(l.Posterior)+len(l.Conditional) == 0 {
		return l, fmt.Errorf("no axes: %w", ErrInvalid)
	}

	return l, nil
}

// Load reads and decodes the layout at path.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}

	return Parse(data)
}

// Marshal encodes l as YAML.
func (l Layout) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

// List builds the axis list.
func (l Layout) List() axis.List {
	return axis.NewList(convert(l.Posterior), convert(l.Conditional))
}

// Extents returns the declared extents, posterior group first.
func (l Layout) Extents() []int {
	out := make([]int, 0, len(l.Posterior)+len(l.Conditional))
	for _, a := range l.Posterior {
		out = append(out, a.Extent)
	}
	for _, a := range l.Conditional {
		out = append(out, a.Extent)
	}

	return out
}

// Table allocates a zero table with this layout.
func (l Layout) Table() (*table.Table, error) {
	t, err := table.New(l.List(), l.Extents()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return t, nil
}

// FromTable describes t.
func FromTable(t *table.Table) Layout {
	var l Layout
	n := t.List().Posteriors()
	for i, a := range t.List().Axes() {
		d := Axis{Name: a.Name(), Extent: t.Shape().Extent(i), Static: a.IsStatic()}
		if i < n {
			l.Posterior = append(l.Posterior, d)
		} else {
			l.Conditional = append(l.Conditional, d)
		}
	}

	return l
}

func convert(in []Axis) []axis.Axis {
	out := make([]axis.Axis, len(in))
	for i, a := range in {
		if a.Static {
			out[i] = axis.Static(a.Name, a.Extent)
		} else {
			out[i] = axis.Dynamic(a.Name)
		}
	}

	return out
}
