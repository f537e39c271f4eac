// SPDX-License-Identifier: MIT

// Package algebra composes probability tables with the standard identities.
//
//	Join                  p(x,y)   = p(x) p(y)
//	JoinConditionals      p(x,y|c) = p(x|c) p(y|c)
//	Uncondition           p(x,y)   = p(x|y) p(y)
//	PartialUncondition    p(x,y|c) = p(x|y,c) p(y|c)
//	Condition             p(x|y)   = p(x,y) / p(y)
//	ConditionConditionals p(x|y,c) = p(x,y|c) / p(y|c)
//	Bayes                 p(y|x)   = p(x|y) p(y) / p(x)
//	Marginalize           p(x)     = Σ_y p(x,y)
//
// Every operator validates axis identities and extents of its operands before
// touching any cell, and returns a new table (Condition and
// ConditionConditionals write into a caller-supplied one). Divisions by a
// zero probability yield 0, never NaN or Inf.
//
// Operands built from static axes combine only with static operands: a
// result mixing both kinds is rejected with table.ErrMixedAxes.
package algebra
