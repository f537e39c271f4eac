// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
)

// Join returns p(x,y) = p(x)·p(y) for independent unconditioned a = p(x) and
// b = p(y). The result lists the axes of a, then those of b.
//
// Errors: ErrNilTable, ErrConditional, ErrAxisMismatch when a and b share an
// axis, ErrMixedAxes.
func Join(a, b *table.Table) (*table.Table, error) {
	const op = "Join"
	if err := notNil(a, b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := unconditioned("a", a); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := unconditioned("b", b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := disjoint("posterior axes of a and b", a.PosteriorGroup(), b.PosteriorGroup()); err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := result(axis.Concat(a.PosteriorGroup(), b.PosteriorGroup()), axis.Group{})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	pa := a.List().Posteriors()
	out.Each(func(idx []int, _ float64) {
		*out.CellRef(idx) = a.Cell(idx[:pa]) * b.Cell(idx[pa:])
	})

	return out, nil
}

// JoinConditionals returns p(x,y|c) = p(x|c)·p(y|c) for a = p(x|c) and
// b = p(y|c) sharing the conditional group c.
//
// Errors: ErrNilTable, ErrNotConditional, ErrAxisMismatch / ErrShapeMismatch
// when the conditional groups differ or x, y and c overlap, ErrMixedAxes.
func JoinConditionals(a, b *table.Table) (*table.Table, error) {
	const op = "JoinConditionals"
	if err := notNil(a, b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := conditional("a", a); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := conditional("b", b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := sameGroup("conditional axes of b", b.ConditionalGroup(), a.ConditionalGroup()); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := disjointAll(a.PosteriorGroup(), b.PosteriorGroup(), a.ConditionalGroup()); err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := result(axis.Concat(a.PosteriorGroup(), b.PosteriorGroup()), a.ConditionalGroup())
	if err != nil {
		return nil, opErrorf(op, err)
	}

	px, py := a.List().Posteriors(), b.List().Posteriors()
	aIdx := make([]int, a.List().Len())
	out.Each(func(idx []int, _ float64) {
		// idx = [x..., y..., c...]; a reads [x..., c...], b reads [y..., c...].
		copy(aIdx, idx[:px])
		copy(aIdx[px:], idx[px+py:])
		*out.CellRef(idx) = a.Cell(aIdx) * b.Cell(idx[px:])
	})

	return out, nil
}

// Uncondition returns p(x,y) = p(x|y)·p(y) for aGb = p(x|y) and b = p(y).
// The result lists x then y.
//
// Errors: ErrNilTable, ErrNotConditional, ErrConditional,
// ErrAxisMismatch / ErrShapeMismatch when the conditional group of aGb is not
// the posterior group of b or shares an axis with the posterior group of aGb,
// ErrMixedAxes.
func Uncondition(aGb, b *table.Table) (*table.Table, error) {
	const op = "Uncondition"
	if err := notNil(aGb, b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := conditional("aGb", aGb); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := unconditioned("b", b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := sameGroup("b", b.PosteriorGroup(), aGb.ConditionalGroup()); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := disjoint("axes of aGb", aGb.PosteriorGroup(), aGb.ConditionalGroup()); err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := result(axis.Concat(aGb.PosteriorGroup(), aGb.ConditionalGroup()), axis.Group{})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	px := aGb.List().Posteriors()
	out.Each(func(idx []int, _ float64) {
		*out.CellRef(idx) = aGb.Cell(idx) * b.Cell(idx[px:])
	})

	return out, nil
}

// PartialUncondition returns p(x,y|c) = p(x|y,c)·p(y|c) for aGbc = p(x|y,c)
// and bGc = p(y|c). An unconditioned bGc = p(y) reduces to Uncondition.
//
// Errors: ErrNilTable, ErrNotConditional, ErrAxisMismatch / ErrShapeMismatch
// when the conditional group of aGbc is not y followed by c or x, y and c
// overlap, ErrMixedAxes.
func PartialUncondition(aGbc, bGc *table.Table) (*table.Table, error) {
	const op = "PartialUncondition"
	if err := notNil(aGbc, bGc); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := conditional("aGbc", aGbc); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := sameGroup("conditional axes of aGbc", aGbc.ConditionalGroup(),
		axis.Concat(bGc.PosteriorGroup(), bGc.ConditionalGroup())); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := disjointAll(aGbc.PosteriorGroup(), bGc.PosteriorGroup(), bGc.ConditionalGroup()); err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := result(axis.Concat(aGbc.PosteriorGroup(), bGc.PosteriorGroup()), bGc.ConditionalGroup())
	if err != nil {
		return nil, opErrorf(op, err)
	}

	px := aGbc.List().Posteriors()
	out.Each(func(idx []int, _ float64) {
		// idx = [x..., y..., c...] addresses aGbc directly; bGc reads [y..., c...].
		*out.CellRef(idx) = aGbc.Cell(idx) * bGc.Cell(idx[px:])
	})

	return out, nil
}
