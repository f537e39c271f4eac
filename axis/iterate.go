// SPDX-License-Identifier: MIT

package axis

// Iteration over a Shape.
//
// Visitors receive a flat index (posterior values then conditional values)
// owned by the iterator: it is overwritten on the next step, so copy it to
// retain it. Every valid index is visited exactly once.

// Each visits every index in forward order: first axis slowest, last fastest.
func (s Shape) Each(f func(idx []int)) {
	ext := s.Extents()
	idx := make([]int, len(ext))
	for n := s.Size(); n > 0; n-- {
		f(idx)
		// Odometer increment from the last digit.
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < ext[i] {
				break
			}
			idx[i] = 0
		}
	}
}

// EachReverse visits every index in reverse order: last axis slowest, first
// fastest.
func (s Shape) EachReverse(f func(idx []int)) {
	ext := s.Extents()
	idx := make([]int, len(ext))
	for n := s.Size(); n > 0; n-- {
		f(idx)
		// Odometer increment from the first digit.
		for i := 0; i < len(idx); i++ {
			idx[i]++
			if idx[i] < ext[i] {
				break
			}
			idx[i] = 0
		}
	}
}

// EachConditional visits every combination of conditional values in forward
// order, passing row offsets alongside.
//
// Errors: ErrNotConditional when the shape has no conditional axes.
func (s Shape) EachConditional(f func(row int, cond []int)) error {
	if len(s.rows) == 0 {
		return ErrNotConditional
	}
	cond := make([]int, len(s.rows))
	for row := 0; row < s.nr; row++ {
		unflatten(row, s.rows, cond)
		f(row, cond)
	}

	return nil
}
