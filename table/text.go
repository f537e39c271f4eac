// SPDX-License-Identifier: MIT

package table

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlprob/axis"
)

// Text format:
//
//	Conditional Distribution      free-text label
//	X Y | Z                       axis names, "|" at the divider
//	4 4 | 2                       extents, "|" at the divider
//	3 1 | 0 : 0.125               one line per cell above epsilon
//
// Cells are written in reverse iteration order (last axis slowest) with the
// shortest representation that parses back to the same float64.

const divider = "|"

// Dump writes t in the text format.
func (t *Table) Dump(w io.Writer, opts ...DumpOption) error {
	o := gatherDumpOptions(opts)
	label := o.label
	if label == "" {
		label = LabelDistribution
		if t.IsConditional() {
			label = LabelConditionalDistribution
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, label)
	fmt.Fprintln(bw, t.list.String())
	fmt.Fprintln(bw, t.shape.String())

	p := t.list.Posteriors()
	t.EachReverse(func(idx []int, v float64) {
		if v <= o.epsilon {
			return
		}
		bw.WriteString(formatIndex(idx, p, t.IsConditional()))
		bw.WriteString(" : ")
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
	})

	return bw.Flush()
}

// formatIndex renders "0 1 | 2"; the divider appears only for conditional tables.
func formatIndex(idx []int, post int, conditional bool) string {
	var b strings.Builder
	for i, v := range idx {
		if i == post && conditional {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(divider)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Load reads a dump into a table over l. The label and axis-name lines are
// ignored; l supplies the axes. Cells not listed are 0.
//
// Errors: ErrMalformed for unparsable text, the sizing errors of New, and
// ErrOutOfRange for cells outside the extents.
func Load(r io.Reader, l axis.List) (*Table, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("table.Load: %w", err)
	}
	d := newDumpReader(r)
	if _, err := d.header(); err != nil {
		return nil, fmt.Errorf("table.Load: %w", err)
	}

	return d.body(l)
}

// LoadAny reads a dump whose axes are not known in advance: the names line
// becomes a list of dynamic axes.
func LoadAny(r io.Reader) (*Table, error) {
	d := newDumpReader(r)
	names, err := d.header()
	if err != nil {
		return nil, fmt.Errorf("table.LoadAny: %w", err)
	}
	post, cond, divided := splitGroups(names)
	l := axis.Of(dynamicAxes(post)...)
	if divided {
		l = l.Given(dynamicAxes(cond)...)
	}
	if err = l.Validate(); err != nil {
		return nil, fmt.Errorf("table.LoadAny: line 2: %w", err)
	}

	return d.body(l)
}

func dynamicAxes(names []string) []axis.Axis {
	out := make([]axis.Axis, len(names))
	for i, n := range names {
		out[i] = axis.Dynamic(n)
	}

	return out
}

// dumpReader walks a dump line by line, tracking line numbers for errors.
type dumpReader struct {
	sc   *bufio.Scanner
	line int
}

func newDumpReader(r io.Reader) *dumpReader {
	return &dumpReader{sc: bufio.NewScanner(r)}
}

func (d *dumpReader) next() (string, bool) {
	if !d.sc.Scan() {
		return "", false
	}
	d.line++

	return d.sc.Text(), true
}

func (d *dumpReader) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", d.line, fmt.Sprintf(format, args...), ErrMalformed)
}

// header consumes the label and names lines and returns the names line.
func (d *dumpReader) header() (string, error) {
	if _, ok := d.next(); !ok {
		return "", d.scanErr("missing label line")
	}
	names, ok := d.next()
	if !ok {
		return "", d.scanErr("missing axis-name line")
	}

	return names, nil
}

func (d *dumpReader) scanErr(msg string) error {
	if err := d.sc.Err(); err != nil {
		return err
	}

	return d.malformed(msg)
}

// body parses the extents line and the cell lines.
func (d *dumpReader) body(l axis.List) (*Table, error) {
	line, ok := d.next()
	if !ok {
		return nil, fmt.Errorf("table.Load: %w", d.scanErr("missing extents line"))
	}
	extents, err := d.parseTuple(line, l)
	if err != nil {
		return nil, fmt.Errorf("table.Load: %w", err)
	}
	t, err := New(l, extents...)
	if err != nil {
		return nil, fmt.Errorf("table.Load: line %d: %w", d.line, err)
	}

	for {
		line, ok = d.next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lhs, rhs, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("table.Load: %w", d.malformed("missing ':' in %q", line))
		}
		idx, err := d.parseTuple(lhs, l)
		if err != nil {
			return nil, fmt.Errorf("table.Load: %w", err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rhs), 64)
		if err != nil {
			return nil, fmt.Errorf("table.Load: %w", d.malformed("value %q", rhs))
		}
		if err = t.SetIndex(idx, v); err != nil {
			return nil, fmt.Errorf("table.Load: line %d: %w", d.line, err)
		}
	}
	if err = d.sc.Err(); err != nil {
		return nil, fmt.Errorf("table.Load: %w", err)
	}

	return t, nil
}

// parseTuple reads "a b | c" into integers, checking the grouping against l.
func (d *dumpReader) parseTuple(s string, l axis.List) ([]int, error) {
	post, cond, divided := splitGroups(s)
	if divided != l.IsConditional() || len(post) != l.Posteriors() || len(cond) != l.Conditionals() {
		return nil, d.malformed("%q does not match axes %v", strings.TrimSpace(s), l)
	}
	out := make([]int, 0, len(post)+len(cond))
	for _, tok := range append(post, cond...) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, d.malformed("integer %q", tok)
		}
		out = append(out, n)
	}

	return out, nil
}

// splitGroups splits whitespace-separated tokens at the first "|".
// Tokens after a second "|" stay in the conditional group and fail
// integer or axis-name validation downstream.
func splitGroups(s string) (post, cond []string, divided bool) {
	for _, tok := range strings.Fields(s) {
		switch {
		case tok == divider && !divided:
			divided = true
		case divided:
			cond = append(cond, tok)
		default:
			post = append(post, tok)
		}
	}

	return post, cond, divided
}
