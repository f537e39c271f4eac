// SPDX-License-Identifier: MIT

package table

import (
	"strings"
)

// Summary geometry.
const (
	summaryWidth     = 20
	summaryMaxHeight = 20
)

// Summary renders the dump header followed by a Histogram sized 20 wide and
// min(Cols, 20) high. Intended for logs.
func (t *Table) Summary() string {
	var b strings.Builder
	if t.IsConditional() {
		b.WriteString(LabelConditionalDistribution)
	} else {
		b.WriteString(LabelDistribution)
	}
	b.WriteByte('\n')
	b.WriteString(t.list.String())
	b.WriteByte('\n')
	b.WriteString(t.shape.String())
	b.WriteByte('\n')
	b.WriteString(t.Histogram(summaryWidth, min(t.Cols(), summaryMaxHeight)))

	return b.String()
}

// Histogram renders each row as ASCII art: height lines, each width columns
// wide. Columns of the row are bucketed into lines; a '+' marks the value of
// a cell scaled against the table maximum, '-' leads up to the first mark.
// Rows are separated by a line of '-'. Non-positive sizes yield "".
func (t *Table) Histogram(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var b strings.Builder
	peak := 0.0
	t.data.Do(func(_, _ int, v float64) bool {
		if v > peak {
			peak = v
		}
		return true
	})

	rows, cols := t.Rows(), t.Cols()
	marks := make([][]bool, height) // marks[line][position]
	for i := range marks {
		marks[i] = make([]bool, width)
	}
	for r := 0; r < rows; r++ {
		for i := range marks {
			clear(marks[i])
		}
		row, _ := t.data.Row(r)
		for c, v := range row {
			line := c * height / cols
			pos := 0
			if peak > 0 && v > 0 {
				pos = int(v / peak * float64(width-1))
			}
			marks[line][pos] = true
		}

		for _, line := range marks {
			first := true
			for _, marked := range line {
				switch {
				case marked:
					b.WriteByte('+')
					first = false
				case first:
					b.WriteByte('-')
				default:
					b.WriteByte(' ')
				}
			}
			b.WriteByte('\n')
		}
		if r != rows-1 {
			b.WriteString(strings.Repeat("-", width))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
