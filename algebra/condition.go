// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
)

// safeDiv returns n/d, or 0 when d is 0.
func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}

	return n / d
}

// conditionLayout validates ab = p(x,y) against b = p(y) and returns the
// groups x and y.
func conditionLayout(ab, b *table.Table) (x, y axis.Group, err error) {
	if err = notNil(ab, b); err != nil {
		return
	}
	if err = unconditioned("ab", ab); err != nil {
		return
	}
	if err = unconditioned("b", b); err != nil {
		return
	}
	all := ab.PosteriorGroup()
	py := b.List().Posteriors()
	if py > all.Len() {
		err = sameGroup("trailing axes of ab", all, b.PosteriorGroup())
		return
	}
	x, y = all.Split(all.Len() - py)
	err = sameGroup("trailing axes of ab", y, b.PosteriorGroup())

	return
}

// Condition writes p(x|y) = p(x,y)/p(y) into out for ab = p(x,y) and
// b = p(y); out must be sized as x | y. Cells whose p(y) is 0 become 0.
//
// Errors: ErrNilTable, ErrConditional, ErrAxisMismatch / ErrShapeMismatch
// when the trailing axes of ab are not b or out is not x | y.
func Condition(ab, b, out *table.Table) error {
	const op = "Condition"
	x, y, err := conditionLayout(ab, b)
	if err != nil {
		return opErrorf(op, err)
	}
	if err = notNil(out); err != nil {
		return opErrorf(op, err)
	}
	if err = sameGroup("posterior axes of out", out.PosteriorGroup(), x); err != nil {
		return opErrorf(op, err)
	}
	if err = sameGroup("conditional axes of out", out.ConditionalGroup(), y); err != nil {
		return opErrorf(op, err)
	}

	px := x.Len()
	out.Each(func(idx []int, _ float64) {
		*out.CellRef(idx) = safeDiv(ab.Cell(idx), b.Cell(idx[px:]))
	})

	return nil
}

// Conditioned is Condition into a freshly allocated x | y table.
func Conditioned(ab, b *table.Table) (*table.Table, error) {
	x, y, err := conditionLayout(ab, b)
	if err != nil {
		return nil, opErrorf("Condition", err)
	}
	out, err := result(x, y)
	if err != nil {
		return nil, opErrorf("Condition", err)
	}
	if err = Condition(ab, b, out); err != nil {
		return nil, err
	}

	return out, nil
}

// conditionConditionalsLayout validates abGc = p(x,y|c) against bGc = p(y|c)
// and returns the groups x, y and c.
func conditionConditionalsLayout(abGc, bGc *table.Table) (x, y, c axis.Group, err error) {
	if err = notNil(abGc, bGc); err != nil {
		return
	}
	if err = conditional("abGc", abGc); err != nil {
		return
	}
	if err = conditional("bGc", bGc); err != nil {
		return
	}
	c = abGc.ConditionalGroup()
	if err = sameGroup("conditional axes of bGc", bGc.ConditionalGroup(), c); err != nil {
		return
	}
	all := abGc.PosteriorGroup()
	py := bGc.List().Posteriors()
	if py > all.Len() {
		err = sameGroup("trailing posterior axes of abGc", all, bGc.PosteriorGroup())
		return
	}
	x, y = all.Split(all.Len() - py)
	err = sameGroup("trailing posterior axes of abGc", y, bGc.PosteriorGroup())

	return
}

// ConditionConditionals writes p(x|y,c) = p(x,y|c)/p(y|c) into out for
// abGc = p(x,y|c) and bGc = p(y|c); out must be sized as x | y, c.
// Cells whose p(y|c) is 0 become 0.
//
// Errors: ErrNilTable, ErrNotConditional, ErrAxisMismatch / ErrShapeMismatch.
func ConditionConditionals(abGc, bGc, out *table.Table) error {
	const op = "ConditionConditionals"
	x, y, c, err := conditionConditionalsLayout(abGc, bGc)
	if err != nil {
		return opErrorf(op, err)
	}
	if err = notNil(out); err != nil {
		return opErrorf(op, err)
	}
	if err = sameGroup("posterior axes of out", out.PosteriorGroup(), x); err != nil {
		return opErrorf(op, err)
	}
	if err = sameGroup("conditional axes of out", out.ConditionalGroup(), axis.Concat(y, c)); err != nil {
		return opErrorf(op, err)
	}

	px := x.Len()
	out.Each(func(idx []int, _ float64) {
		// idx = [x..., y..., c...] addresses abGc directly; bGc reads [y..., c...].
		*out.CellRef(idx) = safeDiv(abGc.Cell(idx), bGc.Cell(idx[px:]))
	})

	return nil
}

// ConditionedConditionals is ConditionConditionals into a freshly allocated
// x | y, c table.
func ConditionedConditionals(abGc, bGc *table.Table) (*table.Table, error) {
	x, y, c, err := conditionConditionalsLayout(abGc, bGc)
	if err != nil {
		return nil, opErrorf("ConditionConditionals", err)
	}
	out, err := result(x, axis.Concat(y, c))
	if err != nil {
		return nil, opErrorf("ConditionConditionals", err)
	}
	if err = ConditionConditionals(abGc, bGc, out); err != nil {
		return nil, err
	}

	return out, nil
}
