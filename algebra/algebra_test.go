// SPDX-License-Identifier: MIT
package algebra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlprob/algebra"
	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/initialize"
	"github.com/katalvlaran/lvlprob/table"
	"github.com/stretchr/testify/require"
)

const roundTripTol = 1e-10 // L1 bound for algebraic round trips

var (
	X = axis.Dynamic("X")
	Y = axis.Dynamic("Y")
	Z = axis.Dynamic("Z")
	W = axis.Dynamic("W")
	A = axis.Static("A", 2)
	B = axis.Static("B", 3)
)

// randomTable allocates and randomly initializes a table.
func randomTable(t *testing.T, rng *rand.Rand, l axis.List, extents ...int) *table.Table {
	t.Helper()
	p, err := table.New(l, extents...)
	require.NoError(t, err)
	require.NoError(t, initialize.Random(p, rng))

	return p
}

// requireClose asserts an L1 distance below roundTripTol.
func requireClose(t *testing.T, want, got *table.Table) {
	t.Helper()
	d, err := table.Distance(want, got)
	require.NoError(t, err)
	require.Less(t, d, roundTripTol)
}

// requireRowsNormalized asserts that every conditioning context of p sums to 1.
func requireRowsNormalized(t *testing.T, p *table.Table) {
	t.Helper()
	sums, err := p.SumByConditional()
	require.NoError(t, err)
	require.True(t, sums.List().Equal(axis.Of(p.ConditionalAxes()...)))
	sums.Each(func(_ []int, v float64) {
		require.InDelta(t, 1.0, v, 1e-12)
	})
}

func TestJoinMarginalizeRoundTrip(t *testing.T) {
	rng := initialize.NewRand(11)
	pX := randomTable(t, rng, axis.Of(X), 3)
	pYZ := randomTable(t, rng, axis.Of(Y, Z), 4, 2)

	j, err := algebra.Join(pX, pYZ)
	require.NoError(t, err)
	require.Equal(t, "X Y Z", j.List().String())
	require.InDelta(t, 1.0, j.Sum(), 1e-12)

	backX, err := algebra.Marginalize(j, 0)
	require.NoError(t, err)
	requireClose(t, pX, backX)

	backYZ, err := algebra.Marginalize(j, 1, 2)
	require.NoError(t, err)
	requireClose(t, pYZ, backYZ)
}

func TestJoinConditionals(t *testing.T) {
	rng := initialize.NewRand(12)
	xGz := randomTable(t, rng, axis.Of(X).Given(Z), 3, 2)
	yGz := randomTable(t, rng, axis.Of(Y).Given(Z), 4, 2)

	j, err := algebra.JoinConditionals(xGz, yGz)
	require.NoError(t, err)
	require.Equal(t, "X Y | Z", j.List().String())
	requireRowsNormalized(t, j)
	v, err := j.At(X.Is(2), Y.Is(1), Z.Is(1))
	require.NoError(t, err)
	require.InDelta(t, xGz.AtOrZero(X.Is(2), Z.Is(1))*yGz.AtOrZero(Y.Is(1), Z.Is(1)), v, 1e-15)

	back, err := algebra.Marginalize(j, 0, 2)
	require.NoError(t, err)
	requireClose(t, xGz, back)

	wrongC := randomTable(t, rng, axis.Of(Y).Given(W), 4, 2)
	_, err = algebra.JoinConditionals(xGz, wrongC)
	require.ErrorIs(t, err, table.ErrAxisMismatch)
	wrongExt := randomTable(t, rng, axis.Of(Y).Given(Z), 4, 3)
	_, err = algebra.JoinConditionals(xGz, wrongExt)
	require.ErrorIs(t, err, table.ErrShapeMismatch)
}

func TestUnconditionConditionRoundTrip(t *testing.T) {
	rng := initialize.NewRand(13)
	xGy := randomTable(t, rng, axis.Of(X).Given(Y), 3, 4)
	pY := randomTable(t, rng, axis.Of(Y), 4)

	pXY, err := algebra.Uncondition(xGy, pY)
	require.NoError(t, err)
	require.Equal(t, "X Y", pXY.List().String())
	require.InDelta(t, 1.0, pXY.Sum(), 1e-12)

	back, err := algebra.Conditioned(pXY, pY)
	require.NoError(t, err)
	requireClose(t, xGy, back)

	// Out-parameter form.
	out, err := table.New(axis.Of(X).Given(Y), 3, 4)
	require.NoError(t, err)
	require.NoError(t, algebra.Condition(pXY, pY, out))
	requireClose(t, xGy, out)

	bad, err := table.New(axis.Of(Y).Given(X), 4, 3)
	require.NoError(t, err)
	require.ErrorIs(t, algebra.Condition(pXY, pY, bad), table.ErrAxisMismatch)
}

func TestPartialUnconditionRoundTrip(t *testing.T) {
	rng := initialize.NewRand(14)
	xGyz := randomTable(t, rng, axis.Of(X).Given(Y, Z), 2, 3, 4)
	yGz := randomTable(t, rng, axis.Of(Y).Given(Z), 3, 4)

	xyGz, err := algebra.PartialUncondition(xGyz, yGz)
	require.NoError(t, err)
	require.Equal(t, "X Y | Z", xyGz.List().String())
	requireRowsNormalized(t, xyGz)

	back, err := algebra.ConditionedConditionals(xyGz, yGz)
	require.NoError(t, err)
	require.Equal(t, "X | Y Z", back.List().String())
	requireClose(t, xGyz, back)

	out, err := table.New(axis.Of(X).Given(Y, Z), 2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, algebra.ConditionConditionals(xyGz, yGz, out))
	requireClose(t, xGyz, out)

	_, err = algebra.PartialUncondition(xGyz, randomTable(t, rng, axis.Of(Z).Given(Y), 4, 3))
	require.ErrorIs(t, err, table.ErrAxisMismatch)
}

func TestBayesInvolution(t *testing.T) {
	rng := initialize.NewRand(15)
	xGy := randomTable(t, rng, axis.Of(X).Given(Y), 3, 5)
	pY := randomTable(t, rng, axis.Of(Y), 5)

	pXY, err := algebra.Uncondition(xGy, pY)
	require.NoError(t, err)
	pX, err := algebra.Marginalize(pXY, 0)
	require.NoError(t, err)

	yGx, err := algebra.Bayes(xGy, pX, pY)
	require.NoError(t, err)
	require.Equal(t, "Y | X", yGx.List().String())
	requireRowsNormalized(t, yGx)

	back, err := algebra.Bayes(yGx, pY, pX)
	require.NoError(t, err)
	requireClose(t, xGy, back)
}

func TestZeroDenominators(t *testing.T) {
	pXY, err := table.New(axis.Of(X, Y), 2, 2)
	require.NoError(t, err)
	require.NoError(t, pXY.Set(0.5, X.Is(0), Y.Is(0)))
	require.NoError(t, pXY.Set(0.5, X.Is(1), Y.Is(0)))
	pY, err := pXY.Marginalize(1) // p(Y=1) = 0
	require.NoError(t, err)

	xGy, err := algebra.Conditioned(pXY, pY)
	require.NoError(t, err)
	require.Equal(t, 0.5, xGy.AtOrZero(X.Is(1), Y.Is(0)))
	require.Equal(t, 0.0, xGy.AtOrZero(X.Is(0), Y.Is(1))) // 0/0 ⇒ 0
	require.Equal(t, []float64{1, 0}, xGy.RowSums())

	// p(x) = 0 yields 0 in Bayes.
	pX, err := table.New(axis.Of(X), 2)
	require.NoError(t, err)
	require.NoError(t, pX.Set(1, X.Is(0)))
	yGx, err := algebra.Bayes(xGy, pX, pY)
	require.NoError(t, err)
	require.Equal(t, 0.0, yGx.AtOrZero(Y.Is(0), X.Is(1)))
	require.Equal(t, 0.5, yGx.AtOrZero(Y.Is(0), X.Is(0)))
}

func TestOperandValidation(t *testing.T) {
	rng := initialize.NewRand(16)
	pX := randomTable(t, rng, axis.Of(X), 2)
	xGy := randomTable(t, rng, axis.Of(X).Given(Y), 2, 3)
	pA := randomTable(t, rng, axis.Of(A))

	_, err := algebra.Join(pX, xGy)
	require.ErrorIs(t, err, table.ErrConditional)
	_, err = algebra.Join(pX, nil)
	require.ErrorIs(t, err, table.ErrNilTable)
	_, err = algebra.Join(pA, pX) // static with dynamic
	require.ErrorIs(t, err, table.ErrMixedAxes)
	_, err = algebra.Uncondition(pX, pX)
	require.ErrorIs(t, err, table.ErrNotConditional)
	_, err = algebra.Uncondition(xGy, pX) // b must be p(Y)
	require.ErrorIs(t, err, table.ErrAxisMismatch)
	_, err = algebra.Conditioned(pX, randomTable(t, rng, axis.Of(X, Y), 2, 3))
	require.ErrorIs(t, err, table.ErrAxisMismatch)
	_, err = algebra.Bayes(xGy, pX, randomTable(t, rng, axis.Of(Y), 4))
	require.ErrorIs(t, err, table.ErrShapeMismatch)
	_, err = algebra.Marginalize(nil, 0)
	require.ErrorIs(t, err, table.ErrNilTable)
}

func TestOverlappingAxesRejected(t *testing.T) {
	rng := initialize.NewRand(18)
	pX := randomTable(t, rng, axis.Of(X), 2)
	pXY := randomTable(t, rng, axis.Of(X, Y), 2, 3)
	pYX := randomTable(t, rng, axis.Of(Y, X), 3, 2)

	_, err := algebra.Join(pX, pX)
	require.ErrorIs(t, err, table.ErrAxisMismatch)
	_, err = algebra.Join(pXY, pYX)
	require.ErrorIs(t, err, table.ErrAxisMismatch)

	// x|x pairs with p(x) by group, yet the joint would list X twice.
	xGx := randomTable(t, rng, axis.Of(X).Given(X), 2, 2)
	_, err = algebra.Uncondition(xGx, pX)
	require.ErrorIs(t, err, table.ErrAxisMismatch)

	xGz := randomTable(t, rng, axis.Of(X).Given(Z), 2, 4)
	_, err = algebra.JoinConditionals(xGz, xGz)
	require.ErrorIs(t, err, table.ErrAxisMismatch)
	zGz := randomTable(t, rng, axis.Of(Z).Given(Z), 4, 4)
	_, err = algebra.JoinConditionals(xGz, zGz)
	require.ErrorIs(t, err, table.ErrAxisMismatch)

	xGxz := randomTable(t, rng, axis.Of(X).Given(X, Z), 2, 2, 4)
	_, err = algebra.PartialUncondition(xGxz, xGz)
	require.ErrorIs(t, err, table.ErrAxisMismatch)

	// Square builds x | x on purpose.
	sq, err := algebra.Square(pX)
	require.NoError(t, err)
	require.Equal(t, "X | X", sq.List().String())
}

func TestStaticAlgebra(t *testing.T) {
	rng := initialize.NewRand(17)
	aGb := randomTable(t, rng, axis.Of(A).Given(B))
	pB := randomTable(t, rng, axis.Of(B))

	pAB, err := algebra.Uncondition(aGb, pB)
	require.NoError(t, err)
	require.True(t, pAB.List().IsStatic())

	back, err := algebra.Conditioned(pAB, pB)
	require.NoError(t, err)
	requireClose(t, aGb, back)
}

func TestSquare(t *testing.T) {
	pX, err := table.New(axis.Of(X, Y), 3, 2)
	require.NoError(t, err)

	sq, err := algebra.Square(pX)
	require.NoError(t, err)
	require.Equal(t, "X Y | X Y", sq.List().String())
	require.Equal(t, 6, sq.Rows())
	require.Equal(t, 6, sq.Cols())
	require.Equal(t, 0.0, sq.Sum())

	_, err = algebra.Square(sq)
	require.ErrorIs(t, err, table.ErrConditional)
}
