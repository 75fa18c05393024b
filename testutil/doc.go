// Package testutil provides testing utilities for bitfield.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator that produces random field
// layouts and values that fit them.
//
// # Random Layouts
//
//	rng := testutil.NewRNG(seed)
//	fields := rng.Layout(32) // non-overlapping fields within 32 bits
//	rng.Shuffle(fields)      // random insertion order
package testutil
