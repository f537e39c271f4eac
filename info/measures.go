// SPDX-License-Identifier: MIT

package info

import (
	"github.com/katalvlaran/lvlprob/algebra"
	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
)

// Entropy returns H(X) of an unconditioned table p = p(x).
//
// Errors: ErrNilTable, ErrConditional.
func Entropy(p *table.Table) (float64, error) {
	if err := notNil(p); err != nil {
		return 0, infoErrorf("Entropy", err)
	}
	if err := unconditioned("p", p); err != nil {
		return 0, infoErrorf("Entropy", err)
	}

	return entropy(p), nil
}

func entropy(p *table.Table) float64 {
	var h float64
	p.Each(func(_ []int, v float64) {
		h += xlogy(v, v)
	})

	return -bits(h)
}

// ConditionalEntropy returns H(A|B) for aGb = p(a|b) and b = p(b).
//
// Errors: ErrNilTable, ErrNotConditional, ErrConditional,
// ErrAxisMismatch / ErrShapeMismatch when b is not the conditional group of aGb.
func ConditionalEntropy(aGb, b *table.Table) (float64, error) {
	if err := marginalPair(aGb, b); err != nil {
		return 0, infoErrorf("ConditionalEntropy", err)
	}

	pa := aGb.List().Posteriors()
	var h float64
	aGb.Each(func(idx []int, v float64) {
		h += xlogy(v*b.Cell(idx[pa:]), v)
	})

	return -bits(h), nil
}

// MutualInformation returns I(A;B) for aGb = p(a|b) and b = p(b), deriving
// p(a) by unconditioning and summing out b.
//
// Errors: as ConditionalEntropy.
func MutualInformation(aGb, b *table.Table) (float64, error) {
	const measure = "MutualInformation"
	if err := marginalPair(aGb, b); err != nil {
		return 0, infoErrorf(measure, err)
	}
	ab, err := algebra.Uncondition(aGb, b)
	if err != nil {
		return 0, infoErrorf(measure, err)
	}
	a, err := ab.Marginalize(leading(aGb.List().Posteriors())...)
	if err != nil {
		return 0, infoErrorf(measure, err)
	}

	return mutualInformation(aGb, a, b), nil
}

// MutualInformationWith is MutualInformation with a precomputed a = p(a).
//
// Errors: as MutualInformation, plus ErrAxisMismatch / ErrShapeMismatch when a
// is not the posterior group of aGb.
func MutualInformationWith(aGb, a, b *table.Table) (float64, error) {
	const measure = "MutualInformationWith"
	if err := marginalPair(aGb, b); err != nil {
		return 0, infoErrorf(measure, err)
	}
	if err := notNil(a); err != nil {
		return 0, infoErrorf(measure, err)
	}
	if err := unconditioned("a", a); err != nil {
		return 0, infoErrorf(measure, err)
	}
	if err := match("a", a.PosteriorGroup(), aGb.PosteriorGroup()); err != nil {
		return 0, infoErrorf(measure, err)
	}

	return mutualInformation(aGb, a, b), nil
}

func mutualInformation(aGb, a, b *table.Table) float64 {
	pa := aGb.List().Posteriors()
	var mi float64
	aGb.Each(func(idx []int, v float64) {
		mi += xlogy(v*b.Cell(idx[pa:]), ratio(v, a.Cell(idx[:pa])))
	})

	return bits(mi)
}

// ConditionalMutualInformation returns I(X;Y|Z) for xyGz = p(x,y|z),
// xGz = p(x|z), yGz = p(y|z) and z = p(z).
//
// Errors: ErrNilTable, ErrNotConditional, ErrConditional,
// ErrAxisMismatch / ErrShapeMismatch when xyGz is not x,y | z.
func ConditionalMutualInformation(xyGz, xGz, yGz, z *table.Table) (float64, error) {
	const measure = "ConditionalMutualInformation"
	if err := notNil(xyGz, xGz, yGz, z); err != nil {
		return 0, infoErrorf(measure, err)
	}
	for _, c := range []struct {
		name string
		t    *table.Table
	}{{"xyGz", xyGz}, {"xGz", xGz}, {"yGz", yGz}} {
		if err := conditional(c.name, c.t); err != nil {
			return 0, infoErrorf(measure, err)
		}
	}
	if err := unconditioned("z", z); err != nil {
		return 0, infoErrorf(measure, err)
	}
	zg := z.PosteriorGroup()
	if err := match("conditional axes of xyGz", xyGz.ConditionalGroup(), zg); err != nil {
		return 0, infoErrorf(measure, err)
	}
	if err := match("conditional axes of xGz", xGz.ConditionalGroup(), zg); err != nil {
		return 0, infoErrorf(measure, err)
	}
	if err := match("conditional axes of yGz", yGz.ConditionalGroup(), zg); err != nil {
		return 0, infoErrorf(measure, err)
	}
	want := axis.Concat(xGz.PosteriorGroup(), yGz.PosteriorGroup())
	if err := match("posterior axes of xyGz", xyGz.PosteriorGroup(), want); err != nil {
		return 0, infoErrorf(measure, err)
	}

	px, py := xGz.List().Posteriors(), yGz.List().Posteriors()
	xIdx := make([]int, xGz.List().Len())
	var mi float64
	xyGz.Each(func(idx []int, v float64) {
		// idx = [x..., y..., z...]; xGz reads [x..., z...], yGz reads [y..., z...].
		copy(xIdx, idx[:px])
		copy(xIdx[px:], idx[px+py:])
		mi += xlogy(v*z.Cell(idx[px+py:]), ratio(v, xGz.Cell(xIdx)*yGz.Cell(idx[px:])))
	})

	return bits(mi), nil
}

// leading returns the positions 0..n-1.
func leading(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
