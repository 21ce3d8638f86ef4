// Package wfc - RNG utilities for the solver's deterministic draws.
//
// This file centralizes pseudo-random generation for the entropy selector
// and the collapse operator.
//
// Goals:
//   - Determinism: same (seed, keys) ⇒ identical draw on every platform;
//     no time-based sources hidden anywhere.
//   - Independence: selector and collapse draws carry distinct stream tags,
//     so the two sequences never correlate even for equal step counters.
//   - Purity: a draw is a function of its arguments only; no shared RNG
//     state survives between calls.
package wfc

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Stream tags decorrelating the two draw families.
const (
	streamSelect   uint64 = 0x5e1ec7c0de
	streamCollapse uint64 = 0xc011a95ec0de
)

// mix64 applies the SplitMix64 finalizer; see Vigna 2014 for the constants.
// Small input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// deriveSeed folds a base seed and a list of stream keys into one 64-bit
// seed. Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used
// verbatim. Each key is avalanche-mixed in sequence, so (seed, keys) tuples
// differing in any position yield independent streams.
//
// Complexity: O(len(keys)).
func deriveSeed(seed int64, keys ...uint64) int64 {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	x := uint64(seed)
	for _, k := range keys {
		x = mix64(x ^ (k + 0x9e3779b97f4a7c15))
	}
	return int64(x)
}

// drawIndex returns a deterministic index in [0, n) keyed on (seed, keys).
// n must be ≥ 1.
//
// Complexity: O(len(keys)).
func drawIndex(n int, seed int64, keys ...uint64) int {
	r := rand.New(rand.NewSource(deriveSeed(seed, keys...)))
	return r.Intn(n)
}

// coordKey packs a coordinate into a single stream key.
// Columns occupy the high 32 bits, rows the low 32.
//
// Complexity: O(1).
func coordKey(co Coordinate) uint64 {
	return uint64(uint32(co.X))<<32 | uint64(uint32(co.Y))
}
