// SPDX-License-Identifier: MIT

// Package table implements dense probability tables addressed by named axes.
//
// A Table couples an axis.List (which random variables, which of them are
// conditioning ones) with an axis.Shape (their runtime extents) and a
// row-major matrix.Dense holding one row per conditioning context and one
// column per posterior combination:
//
//	X := axis.Dynamic("X")
//	Y := axis.Dynamic("Y")
//	t, _ := table.New(axis.Of(X).Given(Y), 4, 2) // p(X|Y), 2 rows × 4 cols
//	_ = t.Set(0.25, X.Is(3), Y.Is(1))
//
// Surface:
//   - access: At (strict), AtOrZero, Set, Ref and their index-slice variants,
//     Fill, Mode;
//   - row algebra: Normalize, Sum, RowSums, SumByConditional, Map, MapByConditional,
//     PosteriorSlice;
//   - resizing: ReshapeDimensions (discarding), Reshape (remapping);
//   - reductions: GroupedMapSum, GroupedSum, Marginalize;
//   - text format: Dump, Load, LoadAny; ASCII Summary and Histogram.
//
// Normalization acts per row: every conditioning context becomes a
// distribution over the posterior axes; rows summing to 0 are left as is.
//
// Errors are the axis sentinels re-exported here plus the table-specific ones
// in errors.go; match them with errors.Is. A Table is not safe for concurrent
// mutation; distinct tables are independent.
package table
