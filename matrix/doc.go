// SPDX-License-Identifier: MIT

// Package matrix offers the dense row-major storage behind probability tables.
//
// The matrix package provides:
//
//   - Dense, a contiguous float64 buffer with bounds-checked At/Set/Ref,
//     deterministic traversal (Do/Apply) and deep Clone.
//   - Row reductions (RowSums, Total) and in-place row normalization
//     (NormalizeRows) where all-zero rows stay untouched.
//   - Comparison helpers (AllClose, L1Distance) for numeric tests and
//     round-trip checks.
//
// Every exported operation validates its inputs and returns a package
// sentinel (see errors.go) instead of panicking. Callers match errors with
// errors.Is.
//
// A table of R conditional rows and C posterior columns maps onto an R×C
// Dense one-to-one; see package table for the axis-aware surface.
package matrix
