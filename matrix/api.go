// SPDX-License-Identifier: MIT

// Package matrix - public facades.
//
// Thin, documented entry points over the internal kernels. Facades add no
// behavior: they exist so that kernels can evolve without breaking callers.

package matrix

// RowSums returns the per-row totals Σ_j m[i,j].
func RowSums(m Matrix) ([]float64, error) { return rowSums(m) }

// Total returns the grand sum of all elements.
func Total(m Matrix) (float64, error) { return total(m) }

// NormalizeRows scales every row of d in place to sum 1 and returns the row
// sums observed before scaling. Rows summing to 0 are left unchanged.
func NormalizeRows(d *Dense) ([]float64, error) { return normalizeRows(d) }

// AllClose reports whether a and b agree elementwise within
// |a-b| ≤ atol + rtol·|b|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// L1Distance returns Σ_ij |a[i,j] - b[i,j]| for same-shape matrices.
func L1Distance(a, b Matrix) (float64, error) { return l1Distance(a, b) }
