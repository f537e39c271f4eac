// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/lvlprob/table"
)

// Bayes returns p(y|x) = p(x|y)·p(y)/p(x) for aGb = p(x|y), a = p(x) and
// b = p(y). Cells whose p(x) is 0 become 0.
//
// Errors: ErrNilTable, ErrNotConditional, ErrConditional,
// ErrAxisMismatch / ErrShapeMismatch when aGb is not a | b, ErrMixedAxes.
func Bayes(aGb, a, b *table.Table) (*table.Table, error) {
	const op = "Bayes"
	if err := notNil(aGb, a, b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := conditional("aGb", aGb); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := unconditioned("a", a); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := unconditioned("b", b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := sameGroup("a", a.PosteriorGroup(), aGb.PosteriorGroup()); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := sameGroup("b", b.PosteriorGroup(), aGb.ConditionalGroup()); err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := result(b.PosteriorGroup(), a.PosteriorGroup())
	if err != nil {
		return nil, opErrorf(op, err)
	}

	py := b.List().Posteriors()
	fwd := make([]int, aGb.List().Len())
	out.Each(func(idx []int, _ float64) {
		// idx = [y..., x...]; aGb reads [x..., y...].
		n := copy(fwd, idx[py:])
		copy(fwd[n:], idx[:py])
		*out.CellRef(idx) = safeDiv(aGb.Cell(fwd)*b.Cell(idx[:py]), a.Cell(idx[py:]))
	})

	return out, nil
}
