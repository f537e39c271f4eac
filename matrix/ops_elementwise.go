// SPDX-License-Identifier: MIT

// Package matrix - elementwise micro-kernels.
//
// Purpose:
//   - ewScaleRowsInPlace: X[i,j] *= scale[i] via floats.Scale (row normalization backend).
//   - ewAllClose: |a-b| ≤ atol + rtol·|b| over all elements.
//
// Determinism:
//   - Flat i→j loops; no allocation beyond what the contract requires.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ewScaleRowsInPlace computes X[i,j] = X[i,j] * scale[i] without allocating.
// Time: O(r*c). Space: O(1). Deterministic i→j loops.
func ewScaleRowsInPlace(X *Dense, scale []float64) error {
	if X == nil {
		return matrixErrorf("scaleRows", ErrNilMatrix)
	}
	if err := ValidateVecLen(scale, X.r); err != nil {
		return matrixErrorf("scaleRows", err)
	}
	for i := 0; i < X.r; i++ {
		sf := scale[i] // scale factor for row i
		if sf == 1 {
			continue // identity scale keeps the row bit-exact
		}
		floats.Scale(sf, X.data[i*X.c:(i+1)*X.c])
	}

	return nil
}

// ewAllClose reports whether |a-b| ≤ atol + rtol*|b| holds elementwise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	// Tolerances must be finite.
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // read a(i,j)
			bv, _ = b.At(i, j) // read b(i,j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
