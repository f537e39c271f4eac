// SPDX-License-Identifier: MIT

// Package axis describes the named dimensions of a probability table and the
// arithmetic that maps events on those dimensions to matrix coordinates.
//
// The axis package provides:
//
//   - Axis, a named random variable with a static (fixed at definition) or
//     dynamic (supplied per table) extent, and Event, a concrete value on it.
//   - List, an ordered set of axes split by a divider into posterior axes
//     (matrix columns) and conditional axes (matrix rows):
//     axis.Of(X, Y).Given(Z) reads "X, Y given Z".
//   - Shape, the runtime extents of a List, with the mixed-radix codec
//     (Offsets/Decode) and exhaustive iterators (Each, EachReverse,
//     EachConditional).
//
// Offsets fold left to right, offset = offset*extent + event, so the first axis
// of a group is its most significant digit. The forward iterator therefore
// visits cells in row-major order within each group.
//
// Everything here is validated at construction; once a List and a Shape
// agree, iteration cannot fail.
package axis
