// SPDX-License-Identifier: MIT

// Package table: functional options for the text dump.
//
// Design goals:
//   - Deterministic output: the same table and options always print the same bytes.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
package table

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the probability below which a cell counts as empty: it is
// omitted from dumps and contributes nothing to x·log y terms.
const DefaultEpsilon = 1e-15

// Labels written on the first dump line.
const (
	LabelDistribution            = "Distribution"
	LabelConditionalDistribution = "Conditional Distribution"
)

// DumpOption configures Dump.
type DumpOption func(*dumpOptions)

type dumpOptions struct {
	label   string  // first line; empty ⇒ derived from the list
	epsilon float64 // cells ≤ epsilon are omitted
}

func defaultDumpOptions() dumpOptions {
	return dumpOptions{epsilon: DefaultEpsilon}
}

// WithLabel overrides the free-text first line. It panics if label spans
// several lines.
func WithLabel(label string) DumpOption {
	for _, r := range label {
		if r == '\n' || r == '\r' {
			panic(fmt.Sprintf("table: WithLabel(%q): label must be a single line", label))
		}
	}

	return func(o *dumpOptions) { o.label = label }
}

// WithEpsilon sets the omission threshold. It panics on negative or
// non-finite values.
func WithEpsilon(eps float64) DumpOption {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("table: WithEpsilon(%v): must be finite and >= 0", eps))
	}

	return func(o *dumpOptions) { o.epsilon = eps }
}

func gatherDumpOptions(opts []DumpOption) dumpOptions {
	o := defaultDumpOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
