// SPDX-License-Identifier: MIT
package table_test

import (
	"testing"

	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
	"github.com/stretchr/testify/require"
)

var (
	X = axis.Dynamic("X")
	Y = axis.Dynamic("Y")
	Z = axis.Dynamic("Z")
	A = axis.Static("A", 2)
	B = axis.Static("B", 3)
)

// MustTable allocates a table or fails the test.
func MustTable(t *testing.T, l axis.List, extents ...int) *table.Table {
	t.Helper()
	tb, err := table.New(l, extents...)
	require.NoError(t, err)

	return tb
}

// Fill writes values in forward iteration order.
func Fill(t *testing.T, tb *table.Table, values ...float64) {
	t.Helper()
	i := 0
	tb.Each(func(idx []int, _ float64) {
		require.NoError(t, tb.SetIndex(idx, values[i]))
		i++
	})
	require.Equal(t, len(values), i)
}

// JointXY is the 4×4 joint p(X,Y) used across the information tests.
func JointXY(t *testing.T) *table.Table {
	t.Helper()
	p := MustTable(t, axis.Of(X, Y), 4, 4)
	Fill(t, p,
		1.0/8, 1.0/16, 1.0/16, 1.0/4,
		1.0/16, 1.0/8, 1.0/16, 0,
		1.0/32, 1.0/32, 1.0/16, 0,
		1.0/32, 1.0/32, 1.0/16, 0,
	)

	return p
}
