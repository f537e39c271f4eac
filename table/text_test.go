// SPDX-License-Identifier: MIT
package table_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
	"github.com/stretchr/testify/require"
)

func TestDumpFormat(t *testing.T) {
	p := MustTable(t, axis.Of(X).Given(Y), 2, 2)
	require.NoError(t, p.Set(0.25, X.Is(0), Y.Is(0)))
	require.NoError(t, p.Set(0.75, X.Is(1), Y.Is(0)))
	require.NoError(t, p.Set(1, X.Is(1), Y.Is(1)))

	var buf bytes.Buffer
	require.NoError(t, p.Dump(&buf))
	require.Equal(t, strings.Join([]string{
		"Conditional Distribution",
		"X | Y",
		"2 | 2",
		"0 | 0 : 0.25",
		"1 | 0 : 0.75",
		"1 | 1 : 1",
		"",
	}, "\n"), buf.String())

	buf.Reset()
	u := MustTable(t, axis.Of(X, Y), 2, 1)
	require.NoError(t, u.Set(1e-16, X.Is(0), Y.Is(0))) // below epsilon
	require.NoError(t, u.Set(0.5, X.Is(1), Y.Is(0)))
	require.NoError(t, u.Dump(&buf, table.WithLabel("joint")))
	require.Equal(t, "joint\nX Y\n2 1\n1 0 : 0.5\n", buf.String())

	require.Panics(t, func() { table.WithEpsilon(-1) })
	require.Panics(t, func() { table.WithLabel("a\nb") })
}

// TestDumpLoadRoundTrip checks that reloading a dump reproduces every value exactly.
func TestDumpLoadRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := axis.Of(X, Y).Given(Z)
	p := MustTable(t, l, 3, 4, 2)
	require.NoError(t, p.Map(func(float64) float64 { return rng.Float64() }))
	p.Normalize()

	var buf bytes.Buffer
	require.NoError(t, p.Dump(&buf))

	q, err := table.Load(bytes.NewReader(buf.Bytes()), l)
	require.NoError(t, err)
	require.True(t, p.Equal(q))

	r, err := table.LoadAny(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "X Y | Z", r.List().String())
	d, err := table.Distance(p, r)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestDumpLoadRoundTripBinary(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	W := axis.Dynamic("W")
	l := axis.Of(X, Y).Given(Z, W)
	p := MustTable(t, l, 2, 2, 2, 2)
	require.NoError(t, p.Map(func(float64) float64 { return rng.Float64() }))
	p.Normalize()

	var buf bytes.Buffer
	require.NoError(t, p.Dump(&buf))
	require.Equal(t, 3+16, strings.Count(buf.String(), "\n"))

	q, err := table.Load(bytes.NewReader(buf.Bytes()), l)
	require.NoError(t, err)
	require.True(t, p.Equal(q))

	r, err := table.LoadAny(&buf)
	require.NoError(t, err)
	require.Equal(t, "X Y | Z W", r.List().String())
	require.Equal(t, []int{2, 2, 2, 2}, r.Extents())
	r.Each(func(idx []int, v float64) {
		require.Equal(t, p.Cell(idx), v)
	})
}

func TestLoadConditionalOnly(t *testing.T) {
	c := MustTable(t, axis.Of().Given(Z), 3)
	require.NoError(t, c.Set(1, Z.Is(2)))

	var buf bytes.Buffer
	require.NoError(t, c.Dump(&buf))
	require.Equal(t, "Conditional Distribution\n| Z\n| 3\n| 2 : 1\n", buf.String())

	back, err := table.LoadAny(&buf)
	require.NoError(t, err)
	require.True(t, c.Equal(back))
}

func TestLoadErrors(t *testing.T) {
	l := axis.Of(X).Given(Y)
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", table.ErrMalformed},
		{"no extents", "label\nX | Y\n", table.ErrMalformed},
		{"divider missing", "label\nX | Y\n2 2\n", table.ErrMalformed},
		{"bad integer", "label\nX | Y\n2 | two\n", table.ErrMalformed},
		{"bad extent", "label\nX | Y\n0 | 2\n", table.ErrInvalidExtent},
		{"missing colon", "label\nX | Y\n2 | 2\n0 | 1 0.5\n", table.ErrMalformed},
		{"bad value", "label\nX | Y\n2 | 2\n0 | 1 : half\n", table.ErrMalformed},
		{"cell out of range", "label\nX | Y\n2 | 2\n2 | 1 : 0.5\n", table.ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := table.Load(strings.NewReader(tc.text), l)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// Static lists reject foreign extents.
	_, err := table.Load(strings.NewReader("l\nA\n3\n"), axis.Of(A))
	require.ErrorIs(t, err, table.ErrShapeMismatch)
}

func TestSummaryAndHistogram(t *testing.T) {
	p := MustTable(t, axis.Of(X), 2)
	Fill(t, p, 0.5, 1)

	require.Equal(t, "-+ \n--+\n\n", p.Histogram(3, 2))
	require.Equal(t, "", p.Histogram(0, 2))

	s := p.Summary()
	require.True(t, strings.HasPrefix(s, "Distribution\nX\n2\n"))
	require.Equal(t, 2+3+1, strings.Count(s, "\n")) // header + two histogram lines + trailer

	c := MustTable(t, axis.Of(X).Given(Y), 2, 2)
	h := c.Histogram(4, 1)
	require.Equal(t, "+   \n----\n+   \n\n", h) // all-zero rows mark position 0
}
