// SPDX-License-Identifier: MIT

package info

import (
	"errors"
	"fmt"
)

// ErrInvalidWeight indicates a JS mixture weight outside [0,1] or non-finite.
var ErrInvalidWeight = errors.New("info: mixture weight must be in [0,1]")

// infoErrorf tags an error with the measure name.
func infoErrorf(measure string, err error) error {
	return fmt.Errorf("info.%s: %w", measure, err)
}
