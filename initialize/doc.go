// SPDX-License-Identifier: MIT

// Package initialize fills tables with starting distributions.
//
// Uniform makes every row the uniform distribution over the posterior axes;
// Random draws every cell from U[0,1) and normalizes each row. Both act in
// place on a sized table and leave the axes untouched.
//
// Random sources are explicit: NewRand(seed) for a single stream and
// Derive(seed, stream) for per-worker streams that can be created without
// coordination.
package initialize
