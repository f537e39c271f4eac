// SPDX-License-Identifier: MIT

package initialize

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlprob/table"
)

// ErrNilRand indicates a nil random source.
var ErrNilRand = errors.New("initialize: nil random source")

// Uniform sets every cell to 1/Cols, so each row is the uniform distribution
// over the posterior combinations.
func Uniform(t *table.Table) error {
	if t == nil {
		return fmt.Errorf("initialize.Uniform: %w", table.ErrNilTable)
	}

	return t.Fill(1.0 / float64(t.Cols()))
}

// Random fills every cell with a uniform sample from [0,1) in row-major order,
// then normalizes each row. The same rng state always yields the same table.
func Random(t *table.Table, rng *rand.Rand) error {
	if t == nil {
		return fmt.Errorf("initialize.Random: %w", table.ErrNilTable)
	}
	if rng == nil {
		return fmt.Errorf("initialize.Random: %w", ErrNilRand)
	}
	if err := t.Map(func(float64) float64 { return rng.Float64() }); err != nil {
		return fmt.Errorf("initialize.Random: %w", err)
	}
	t.Normalize()

	return nil
}
