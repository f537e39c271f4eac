// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
)

// opErrorf tags an error with the operator name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("algebra.%s: %w", op, err)
}

// notNil checks every operand.
func notNil(ts ...*table.Table) error {
	for i, t := range ts {
		if t == nil {
			return fmt.Errorf("operand %d: %w", i, table.ErrNilTable)
		}
	}

	return nil
}

// unconditioned rejects conditional operands.
func unconditioned(name string, t *table.Table) error {
	if t.IsConditional() {
		return fmt.Errorf("%s is %v: %w", name, t.List(), table.ErrConditional)
	}

	return nil
}

// conditional rejects unconditioned operands.
func conditional(name string, t *table.Table) error {
	if !t.IsConditional() {
		return fmt.Errorf("%s is %v: %w", name, t.List(), table.ErrNotConditional)
	}

	return nil
}

// sameGroup requires identical axes (ErrAxisMismatch) and extents (ErrShapeMismatch).
func sameGroup(what string, got, want axis.Group) error {
	if err := got.Match(want); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}

	return nil
}

// result allocates a zero table with the given posterior and conditional groups.
func result(post, cond axis.Group) (*table.Table, error) {
	l := axis.NewList(post.Axes, cond.Axes)

	return table.New(l, append(slices.Clone(post.Extents), cond.Extents...)...)
}

// disjoint requires that no axis name appears in both groups; a result
// listing an axis twice could not be addressed by events.
func disjoint(what string, a, b axis.Group) error {
	for _, x := range a.Axes {
		for _, y := range b.Axes {
			if x.Name() == y.Name() {
				return fmt.Errorf("%s: axis %q appears twice: %w", what, x.Name(), table.ErrAxisMismatch)
			}
		}
	}

	return nil
}

// disjointAll checks x, y and c pairwise.
func disjointAll(x, y, c axis.Group) error {
	if err := disjoint("x and y", x, y); err != nil {
		return err
	}
	if err := disjoint("x and c", x, c); err != nil {
		return err
	}

	return disjoint("y and c", y, c)
}
