// SPDX-License-Identifier: MIT
package info_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlprob/algebra"
	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/info"
	"github.com/katalvlaran/lvlprob/initialize"
	"github.com/katalvlaran/lvlprob/table"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

var (
	X = axis.Dynamic("X")
	Y = axis.Dynamic("Y")
	Z = axis.Dynamic("Z")
)

// fixture holds the 4×4 joint and its derived tables.
type fixture struct {
	pXY, pX, pY, pXgY, pYgX *table.Table
}

func newTable(t *testing.T, l axis.List, extents []int, values ...float64) *table.Table {
	t.Helper()
	p, err := table.New(l, extents...)
	require.NoError(t, err)
	i := 0
	p.Each(func(idx []int, _ float64) {
		require.NoError(t, p.SetIndex(idx, values[i]))
		i++
	})
	require.Equal(t, len(values), i)

	return p
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	var f fixture
	var err error
	f.pXY = newTable(t, axis.Of(X, Y), []int{4, 4},
		1.0/8, 1.0/16, 1.0/16, 1.0/4,
		1.0/16, 1.0/8, 1.0/16, 0,
		1.0/32, 1.0/32, 1.0/16, 0,
		1.0/32, 1.0/32, 1.0/16, 0,
	)
	f.pX, err = f.pXY.Marginalize(0)
	require.NoError(t, err)
	f.pY, err = f.pXY.Marginalize(1)
	require.NoError(t, err)
	f.pXgY, err = algebra.Conditioned(f.pXY, f.pY)
	require.NoError(t, err)
	pYX, err := f.pXY.Marginalize(1, 0)
	require.NoError(t, err)
	f.pYgX, err = algebra.Conditioned(pYX, f.pX)
	require.NoError(t, err)

	return f
}

func TestEntropy(t *testing.T) {
	f := newFixture(t)
	for _, tc := range []struct {
		name string
		p    *table.Table
		want float64
	}{
		{"joint", f.pXY, 3.375},
		{"X", f.pX, 1.75},
		{"Y", f.pY, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h, err := info.Entropy(tc.p)
			require.NoError(t, err)
			require.InDelta(t, tc.want, h, tol)
		})
	}

	_, err := info.Entropy(f.pXgY)
	require.ErrorIs(t, err, table.ErrConditional)
	_, err = info.Entropy(nil)
	require.ErrorIs(t, err, table.ErrNilTable)
}

func TestEntropyOfPointMassIsZero(t *testing.T) {
	p := newTable(t, axis.Of(X), []int{3}, 0, 1, 0)
	h, err := info.Entropy(p)
	require.NoError(t, err)
	require.Zero(t, h)
}

func TestConditionalEntropy(t *testing.T) {
	f := newFixture(t)

	h, err := info.ConditionalEntropy(f.pYgX, f.pX)
	require.NoError(t, err)
	require.InDelta(t, 1.625, h, tol)

	// H(X|Y) = H(X,Y) - H(Y) = 3.375 - 2.
	h, err = info.ConditionalEntropy(f.pXgY, f.pY)
	require.NoError(t, err)
	require.InDelta(t, 1.375, h, tol)

	_, err = info.ConditionalEntropy(f.pXgY, f.pX)
	require.ErrorIs(t, err, table.ErrAxisMismatch)
	_, err = info.ConditionalEntropy(f.pXY, f.pY)
	require.ErrorIs(t, err, table.ErrNotConditional)
}

func TestMutualInformation(t *testing.T) {
	f := newFixture(t)

	mi, err := info.MutualInformation(f.pYgX, f.pX)
	require.NoError(t, err)
	require.InDelta(t, 0.375, mi, tol)

	mi, err = info.MutualInformation(f.pXgY, f.pY)
	require.NoError(t, err)
	require.InDelta(t, 0.375, mi, tol)

	mi, err = info.MutualInformationWith(f.pXgY, f.pX, f.pY)
	require.NoError(t, err)
	require.InDelta(t, 0.375, mi, tol)

	_, err = info.MutualInformationWith(f.pXgY, f.pY, f.pY)
	require.ErrorIs(t, err, table.ErrAxisMismatch)
}

func TestMutualInformationOfIndependentIsZero(t *testing.T) {
	rng := initialize.NewRand(3)
	pX, err := table.New(axis.Of(X), 3)
	require.NoError(t, err)
	require.NoError(t, initialize.Random(pX, rng))
	pY, err := table.New(axis.Of(Y), 5)
	require.NoError(t, err)
	require.NoError(t, initialize.Random(pY, rng))

	pXY, err := algebra.Join(pX, pY)
	require.NoError(t, err)
	pXgY, err := algebra.Conditioned(pXY, pY)
	require.NoError(t, err)

	mi, err := info.MutualInformation(pXgY, pY)
	require.NoError(t, err)
	require.InDelta(t, 0, mi, tol)
}

func TestConditionalMutualInformation(t *testing.T) {
	rng := initialize.NewRand(5)
	pXYZ, err := table.New(axis.Of(X, Y, Z), 3, 4, 2)
	require.NoError(t, err)
	require.NoError(t, initialize.Random(pXYZ, rng))

	pZ, err := pXYZ.Marginalize(2)
	require.NoError(t, err)
	pXYgZ, err := algebra.Conditioned(pXYZ, pZ)
	require.NoError(t, err)
	pXgZ, err := pXYgZ.Marginalize(0, 2)
	require.NoError(t, err)
	pYgZ, err := pXYgZ.Marginalize(1, 2)
	require.NoError(t, err)

	cmi, err := info.ConditionalMutualInformation(pXYgZ, pXgZ, pYgZ, pZ)
	require.NoError(t, err)

	// I(X;Y|Z) = H(X,Z) + H(Y,Z) - H(X,Y,Z) - H(Z)
	entropyOf := func(positions ...int) float64 {
		m, err := pXYZ.Marginalize(positions...)
		require.NoError(t, err)
		h, err := info.Entropy(m)
		require.NoError(t, err)

		return h
	}
	want := entropyOf(0, 2) + entropyOf(1, 2) - entropyOf(0, 1, 2) - entropyOf(2)
	require.InDelta(t, want, cmi, 1e-9)
	require.Greater(t, cmi, 0.0)

	// Conditionally independent joint.
	indep, err := algebra.JoinConditionals(pXgZ, pYgZ)
	require.NoError(t, err)
	cmi, err = info.ConditionalMutualInformation(indep, pXgZ, pYgZ, pZ)
	require.NoError(t, err)
	require.InDelta(t, 0, cmi, tol)

	_, err = info.ConditionalMutualInformation(pXYgZ, pYgZ, pXgZ, pZ)
	require.ErrorIs(t, err, table.ErrAxisMismatch)
	_, err = info.ConditionalMutualInformation(pXYgZ, pXgZ, pYgZ, pXgZ)
	require.ErrorIs(t, err, table.ErrConditional)
}

func TestKLDivergence(t *testing.T) {
	p := newTable(t, axis.Of(Z), []int{2}, 1.0/2, 1.0/2)
	q := newTable(t, axis.Of(Z), []int{2}, 3.0/4, 1.0/4)

	d, err := info.KLDivergence(p, q)
	require.NoError(t, err)
	require.InDelta(t, 0.2075, d, 1e-4)

	d, err = info.KLDivergence(q, p)
	require.NoError(t, err)
	require.InDelta(t, 0.1887, d, 1e-4)

	d, err = info.KLDivergence(p, p)
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestKLDivergenceEdges(t *testing.T) {
	p := newTable(t, axis.Of(Z), []int{2}, 1, 0)
	q := newTable(t, axis.Of(Z), []int{2}, 0, 1)

	d, err := info.KLDivergence(p, q)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))

	r := newTable(t, axis.Of(Z), []int{3}, 1, 0, 0)
	_, err = info.KLDivergence(p, r)
	require.ErrorIs(t, err, table.ErrShapeMismatch)

	s := newTable(t, axis.Of(X), []int{2}, 1, 0)
	_, err = info.KLDivergence(p, s)
	require.ErrorIs(t, err, table.ErrAxisMismatch)
}

func TestJSDivergence(t *testing.T) {
	p := newTable(t, axis.Of(Z), []int{2}, 1.0/2, 1.0/2)
	q := newTable(t, axis.Of(Z), []int{2}, 3.0/4, 1.0/4)

	d, err := info.JSDivergence(p, q, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 0.048795, d, 1e-6)

	d, err = info.JSDivergence(q, p, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 0.048795, d, 1e-6)

	for _, pi := range []float64{0, 1} {
		d, err = info.JSDivergence(p, q, pi)
		require.NoError(t, err)
		require.InDelta(t, 0, d, tol)
	}

	for _, pi := range []float64{-0.1, 1.5, math.NaN()} {
		_, err = info.JSDivergence(p, q, pi)
		require.ErrorIs(t, err, info.ErrInvalidWeight)
	}

	f := newFixture(t)
	_, err = info.JSDivergence(f.pXgY, f.pXgY, 0.5)
	require.ErrorIs(t, err, table.ErrConditional)
}
