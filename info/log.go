// SPDX-License-Identifier: MIT

package info

import "math"

// Epsilon is the weight below which a term is treated as 0.
const Epsilon = 1e-15

// xlogy returns x·ln y, or 0 when x <= Epsilon.
func xlogy(x, y float64) float64 {
	if x > Epsilon {
		return x * math.Log(y)
	}

	return 0
}

// xlogxovery returns x·ln(x/y), or 0 when x <= Epsilon.
func xlogxovery(x, y float64) float64 {
	if x > Epsilon {
		return x * math.Log(x/y)
	}

	return 0
}

// bits converts a natural-log sum to bits.
func bits(nats float64) float64 { return nats / math.Ln2 }

// ratio returns n/d, or 0 when d is 0.
func ratio(n, d float64) float64 {
	if d == 0 {
		return 0
	}

	return n / d
}
