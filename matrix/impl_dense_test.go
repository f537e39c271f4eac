// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlprob/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4) // create a Dense matrix of size 3x4

	require.Equal(t, 3, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, 4, m.Cols()) // assert Cols() equals expected cols
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At(), Set() and Ref() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2) // create a 2x2 Dense matrix

	_, err := m.At(-1, 0)                         // attempt At() with negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.Ref(0, -1)                         // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3) // create a 2x3 Dense matrix

	require.NoError(t, m.Set(1, 2, 7.89)) // set element at row 1, column 2

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestSetRejectsNaNInf checks the finite-value policy on Set and Fill.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(math.Inf(1)), matrix.ErrNaNInf)
}

// TestRefWritesThrough verifies that Ref exposes the live cell.
func TestRefWritesThrough(t *testing.T) {
	m := MustDense(t, 2, 2)

	p, err := m.Ref(1, 0)
	require.NoError(t, err)
	*p += 0.5 // accumulate through the pointer
	*p += 0.25

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.75, v)
}

// TestCloneIndependence ensures Clone produces a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.CloneDense()

	require.NoError(t, cp.Set(0, 0, 9)) // mutate the copy only

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v) // original untouched
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestRowCopy checks that Row returns a detached copy.
func TestRowCopy(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 100 // must not leak back
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)
}

// TestDoOrderAndEarlyExit verifies row-major traversal and early termination.
func TestDoOrderAndEarlyExit(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 4 // stop after the first element of row 1
	})
	require.Equal(t, []float64{1, 2, 3, 4}, seen)
}

// TestApplyAtomicOnNaN verifies that a failing Apply leaves data untouched.
func TestApplyAtomicOnNaN(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 0}, {2, 3}})

	err := m.Apply(func(_, _ int, v float64) float64 { return 1 / v }) // 1/0 = +Inf
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, "[1, 0]\n[2, 3]\n", m.String()) // unchanged

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(i*10+j) }))
	require.Equal(t, "[1, 1]\n[12, 14]\n", m.String())
}
