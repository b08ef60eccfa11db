// Package rng provides the random sources used by the pattern generators.
//
// Every draw goes through a [Source], a single-method interface returning a
// uniform float64 in [0, 1). Two implementations are provided:
//
//   - [Strong]: backed by crypto/rand, not reproducible.
//   - [ParkMiller]: the minimal-standard LCG (multiplier 16807, modulus
//     2^31-1), reproducible for a given seed.
//
// [Rand] wraps a Source with the range, integer, choice and shuffle helpers
// the generators need. Sources are passed explicitly; there is no package
// level generator.
package rng
