// SPDX-License-Identifier: MIT
// Package axis: sentinel error set.
// Every message is prefixed with "axis: ...". Specialized sentinels wrap their
// family sentinel, so errors.Is(ErrMixedAxes, ErrShapeMismatch) holds and
// callers may match either the precise cause or the family.

package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is the family of extent/partition incompatibilities.
	ErrShapeMismatch = errors.New("axis: shape mismatch")

	// ErrOutOfRange indicates an event value outside [0, extent).
	ErrOutOfRange = errors.New("axis: event out of range")

	// ErrAxisMismatch is the family of axis-identity incompatibilities between
	// operands (wrong names, wrong order, wrong divider placement).
	ErrAxisMismatch = errors.New("axis: axis list mismatch")
)

var (
	// ErrEmptyAxisList indicates a list with no axes.
	ErrEmptyAxisList = fmt.Errorf("%w: empty axis list", ErrShapeMismatch)

	// ErrMixedAxes indicates static and dynamic axes in the same list.
	ErrMixedAxes = fmt.Errorf("%w: static and dynamic axes mixed", ErrShapeMismatch)

	// ErrInvalidExtent indicates a non-positive extent.
	ErrInvalidExtent = fmt.Errorf("%w: extent must be > 0", ErrShapeMismatch)

	// ErrUnnamedAxis indicates an axis with an empty name.
	ErrUnnamedAxis = fmt.Errorf("%w: axis name is empty", ErrAxisMismatch)

	// ErrNotConditional indicates a conditional-only operation on a list
	// without conditional axes.
	ErrNotConditional = fmt.Errorf("%w: no conditional axes", ErrAxisMismatch)

	// ErrInvalidSelection indicates a marginalization selection that is empty,
	// repeats a position, is out of range, or places a posterior position after
	// a conditional one.
	ErrInvalidSelection = fmt.Errorf("%w: invalid axis selection", ErrAxisMismatch)
)
