// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/lvlprob/table"
)

// Marginalize keeps the axes of t at positions and sums out the others;
// see table.Table.GroupedMapSum for the selection rules.
func Marginalize(t *table.Table, positions ...int) (*table.Table, error) {
	if err := notNil(t); err != nil {
		return nil, opErrorf("Marginalize", err)
	}

	return t.Marginalize(positions...)
}

// Square returns a zero x | x table whose posterior and conditional groups
// are both the axes of the unconditioned p = p(x), sized from p.
//
// Errors: ErrNilTable, ErrConditional.
func Square(p *table.Table) (*table.Table, error) {
	const op = "Square"
	if err := notNil(p); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := unconditioned("p", p); err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := result(p.PosteriorGroup(), p.PosteriorGroup())
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return out, nil
}
