// SPDX-License-Identifier: MIT

package info

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlprob/table"
)

// KLDivergence returns D(p||q) for tables of identical list and extents.
// The sum runs over every cell, so conditional tables are accepted and the
// result is the sum over all contexts. It is +Inf when q is 0 where p is not.
//
// Errors: ErrNilTable, ErrAxisMismatch, ErrShapeMismatch.
func KLDivergence(p, q *table.Table) (float64, error) {
	if err := table.ValidateSameLayout(p, q); err != nil {
		return 0, infoErrorf("KLDivergence", err)
	}

	var d float64
	p.Each(func(idx []int, v float64) {
		d += xlogxovery(v, q.Cell(idx))
	})

	return bits(d), nil
}

// JSDivergence returns the π-weighted Jensen-Shannon divergence of the
// unconditioned tables p and q.
//
// Errors: ErrNilTable, ErrConditional, ErrAxisMismatch, ErrShapeMismatch,
// ErrInvalidWeight.
func JSDivergence(p, q *table.Table, pi float64) (float64, error) {
	const measure = "JSDivergence"
	if err := table.ValidateSameLayout(p, q); err != nil {
		return 0, infoErrorf(measure, err)
	}
	if err := unconditioned("p", p); err != nil {
		return 0, infoErrorf(measure, err)
	}
	if math.IsNaN(pi) || pi < 0 || pi > 1 {
		return 0, infoErrorf(measure, fmt.Errorf("π=%v: %w", pi, ErrInvalidWeight))
	}

	m := p.Clone()
	m.Each(func(idx []int, v float64) {
		*m.CellRef(idx) = pi*v + (1-pi)*q.Cell(idx)
	})

	return entropy(m) - pi*entropy(p) - (1-pi)*entropy(q), nil
}
