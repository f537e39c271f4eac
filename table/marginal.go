// SPDX-License-Identifier: MIT

package table

// GroupedMapSum sums f(p) over the axes not selected by positions.
//
// Positions index the expanded list (posterior axes then conditional axes,
// divider not counted). Selected posterior positions stay posterior and
// selected conditional positions stay conditional, each group in the order
// given; all posterior positions must precede the conditional ones.
//
// Errors: ErrInvalidSelection.
func (t *Table) GroupedMapSum(f func(v float64) float64, positions ...int) (*Table, error) {
	l, err := t.list.Select(positions...)
	if err != nil {
		return nil, tableErrorf("GroupedMapSum", err)
	}
	out, err := fromShape(l, t.shape.Select(l.Posteriors(), positions...))
	if err != nil {
		return nil, tableErrorf("GroupedMapSum", err)
	}

	dst := make([]int, len(positions))
	t.Each(func(idx []int, v float64) {
		for i, p := range positions {
			dst[i] = idx[p]
		}
		*out.CellRef(dst) += f(v)
	})

	return out, nil
}

// GroupedSum sums p over the axes not selected by positions.
func (t *Table) GroupedSum(positions ...int) (*Table, error) {
	return t.GroupedMapSum(identity, positions...)
}

// Marginalize keeps the axes at positions and sums out the rest.
// p.Marginalize(0) on p(X,Y) yields p(X); p.Marginalize(1, 0) yields p(Y,X).
func (t *Table) Marginalize(positions ...int) (*Table, error) {
	return t.GroupedSum(positions...)
}

func identity(v float64) float64 { return v }
