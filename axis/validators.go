// SPDX-License-Identifier: MIT

package axis

import "fmt"

// validateSelection checks a marginalization selection against l and returns
// the posterior count of the derived list.
//
// Rules:
//   - at least one position;
//   - every position in [0, l.Len()) and used once;
//   - once a conditional position (>= P) appears, no posterior position follows.
//
// Complexity: O(len(positions) + l.Len()).
func validateSelection(l List, positions []int) (int, error) {
	if len(positions) == 0 {
		return 0, fmt.Errorf("Select: no positions: %w", ErrInvalidSelection)
	}
	seen := make([]bool, len(l.axes))
	post := 0
	inCond := false
	for _, p := range positions {
		if p < 0 || p >= len(l.axes) {
			return 0, fmt.Errorf("Select: position %d of %d: %w", p, len(l.axes), ErrInvalidSelection)
		}
		if seen[p] {
			return 0, fmt.Errorf("Select: position %d repeated: %w", p, ErrInvalidSelection)
		}
		seen[p] = true
		if p < l.post {
			if inCond {
				return 0, fmt.Errorf("Select: posterior position %d after a conditional one: %w", p, ErrInvalidSelection)
			}
			post++
		} else {
			inCond = true
		}
	}

	return post, nil
}

// ValidateEvents checks that events name the axes of group in order.
// Returns ErrAxisMismatch on a count or name mismatch.
func ValidateEvents(group []Axis, events []Event) error {
	if len(events) != len(group) {
		return fmt.Errorf("got %d events for %d axes: %w", len(events), len(group), ErrAxisMismatch)
	}
	for i, e := range events {
		if e.Axis != group[i].name {
			return fmt.Errorf("event %d names %q, want %q: %w", i, e.Axis, group[i].name, ErrAxisMismatch)
		}
	}

	return nil
}
