// SPDX-License-Identifier: MIT

// Package matrix - row reductions and row normalization.
//
// Purpose:
//   - rowSums: per-row totals (the mass of each conditioning context).
//   - normalizeRows: scale each row to sum 1 in place; rows summing to 0 stay untouched.
//   - total: grand sum of all elements.
//
// Determinism:
//   - Fixed row order; each row is reduced by gonum's floats kernels, so
//     results are reproducible for a given input and platform.
//
// AI-Hints:
//   - Probability rows are non-negative, so the plain sum equals the L1 norm;
//     normalizeRows divides by the plain sum and never takes absolute values.

package matrix

import "gonum.org/v1/gonum/floats"

// Operation tags for error wrapping.
const (
	opRowSums       = "RowSums"
	opNormalizeRows = "NormalizeRows"
	opTotal         = "Total"
	opL1Distance    = "L1Distance"
)

// rowSums returns Σ_j X[i,j] for every row i.
// Implementation:
//   - Stage 1: validate X.
//   - Stage 2: Dense fast-path (floats.Sum per row slice), generic fallback via At.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func rowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			sums[i] = floats.Sum(d.data[i*c : (i+1)*c])
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// normalizeRows scales each row of d in place so that it sums to 1.
// Implementation:
//   - Stage 1: validate d (non-nil).
//   - Stage 2: compute per-row sums.
//   - Stage 3: build scale factors (1/sum); rows with sum 0 keep scale 1.
//   - Stage 4: apply ewScaleRowsInPlace.
//
// Behavior highlights:
//   - Degenerate rows (sum==0) are left unchanged, never divided.
//
// Returns:
//   - the original row sums (before scaling).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func normalizeRows(d *Dense) ([]float64, error) {
	if d == nil {
		return nil, matrixErrorf(opNormalizeRows, ErrNilMatrix)
	}
	sums, err := rowSums(d)
	if err != nil {
		return nil, matrixErrorf(opNormalizeRows, err)
	}

	scale := make([]float64, len(sums))
	for i, s := range sums {
		if s != 0 {
			scale[i] = 1.0 / s
		} else {
			scale[i] = 1.0 // preserves the row exactly
		}
	}
	if err = ewScaleRowsInPlace(d, scale); err != nil {
		return nil, matrixErrorf(opNormalizeRows, err)
	}

	return sums, nil
}

// total returns Σ_ij X[i,j].
// Complexity: O(r*c).
func total(X Matrix) (float64, error) {
	sums, err := rowSums(X)
	if err != nil {
		return 0, matrixErrorf(opTotal, err)
	}

	return floats.Sum(sums), nil
}

// l1Distance returns Σ_ij |a[i,j] - b[i,j]|.
// Complexity: O(r*c).
func l1Distance(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opL1Distance, err)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return floats.Distance(da.data, db.data, 1), nil
		}
	}
	var s, av, bv, diff float64
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // bounds guaranteed by the shape check
			bv, _ = b.At(i, j)
			diff = av - bv
			if diff < 0 {
				diff = -diff
			}
			s += diff
		}
	}

	return s, nil
}
