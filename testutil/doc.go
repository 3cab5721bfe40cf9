// Package testutil provides testing utilities for doubleint.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating values
// inside and outside the double-safe range.
//
// # Random Value Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.InRange()     // uniform over [doubleint.Min, doubleint.Max]
//	w := rng.OutOfRange()  // int64 outside the double-safe range
//	vals := rng.Ints(100)  // bulk generation, locks once
package testutil
