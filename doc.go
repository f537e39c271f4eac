// Package lvlprob is an in-memory toolkit for discrete probability tables
// over named axes: build p(x,y|z), combine tables with the textbook
// identities and reduce them to information-theoretic scalars.
//
// 🚀 What is lvlprob?
//
//	A small, dependency-light library that brings together:
//		• Axes & lists: static or runtime-sized dimensions, split by a "|" divider
//		• Codec: reversible (row, col) offsets for every event tuple
//		• Tables: dense rows × cols storage with strict and lenient accessors
//		• Algebra: join, condition, uncondition, Bayes, marginalize
//		• Information: entropy, mutual information, KL and JS divergence
//		• Text dumps: a line-oriented format that round-trips exactly
//
// ✨ Why choose lvlprob?
//
//   - Explicit shapes: every operator checks axis identities and extents first
//   - Defined zeros: divisions by a zero probability yield 0, never NaN
//   - Value semantics: operators return new tables and never touch inputs
//   - Pure Go: no cgo
//
// Packages:
//
//	axis/       — Axis, List, Shape, the offset codec and index iterators
//	matrix/     — dense row-major float64 storage with row statistics
//	table/      — Table: access, normalize, map, reshape, marginalize, dump/load
//	algebra/    — probability identities over tables
//	info/       — entropy, (conditional) mutual information, KL, JS
//	initialize/ — uniform and seeded random initial tables
//	cmd/lvlprob — CLI: new, inspect, demo
//
// Quick example:
//
//	X, Y := axis.Dynamic("X"), axis.Dynamic("Y")
//	pXY, _ := table.New(axis.Of(X, Y), 4, 4)   // p(X,Y): 1 row × 16 cols
//	pY, _ := pXY.Marginalize(1)                 // p(Y)
//	pXgY, _ := algebra.Conditioned(pXY, pY)     // p(X|Y): 4 rows × 4 cols
//	mi, _ := info.MutualInformation(pXgY, pY)   // I(X;Y) in bits
//
//	go get github.com/katalvlaran/lvlprob
package lvlprob
