// SPDX-License-Identifier: MIT

package info

import (
	"fmt"

	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
)

func notNil(ts ...*table.Table) error {
	for i, t := range ts {
		if t == nil {
			return fmt.Errorf("operand %d: %w", i, table.ErrNilTable)
		}
	}

	return nil
}

func unconditioned(name string, t *table.Table) error {
	if t.IsConditional() {
		return fmt.Errorf("%s is %v: %w", name, t.List(), table.ErrConditional)
	}

	return nil
}

func conditional(name string, t *table.Table) error {
	if !t.IsConditional() {
		return fmt.Errorf("%s is %v: %w", name, t.List(), table.ErrNotConditional)
	}

	return nil
}

func match(what string, got, want axis.Group) error {
	if err := got.Match(want); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}

	return nil
}

// marginalPair validates aGb = p(a|b) against b = p(b).
func marginalPair(aGb, b *table.Table) error {
	if err := notNil(aGb, b); err != nil {
		return err
	}
	if err := conditional("aGb", aGb); err != nil {
		return err
	}
	if err := unconditioned("b", b); err != nil {
		return err
	}

	return match("b", b.PosteriorGroup(), aGb.ConditionalGroup())
}
