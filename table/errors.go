// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Axis-level sentinels are re-exported so callers of table, algebra and info
// can match every failure through this package.

package table

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlprob/axis"
)

// Re-exported axis sentinels.
var (
	ErrShapeMismatch    = axis.ErrShapeMismatch
	ErrOutOfRange       = axis.ErrOutOfRange
	ErrAxisMismatch     = axis.ErrAxisMismatch
	ErrNotConditional   = axis.ErrNotConditional
	ErrInvalidSelection = axis.ErrInvalidSelection
	ErrMixedAxes        = axis.ErrMixedAxes
	ErrEmptyAxisList    = axis.ErrEmptyAxisList
	ErrInvalidExtent    = axis.ErrInvalidExtent
)

var (
	// ErrNilTable indicates a nil *Table operand.
	ErrNilTable = errors.New("table: nil table")

	// ErrConditional indicates an operation that needs an unconditioned table.
	ErrConditional = fmt.Errorf("%w: table is conditional", axis.ErrAxisMismatch)

	// ErrStaticReshape indicates a remapping resize of a static table.
	ErrStaticReshape = fmt.Errorf("%w: static axes cannot be resized", axis.ErrShapeMismatch)

	// ErrMalformed indicates unparsable text in Load/LoadAny.
	ErrMalformed = errors.New("table: malformed dump")
)
