// Package testutil provides testing utilities for euclid.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded RNG for generating random real and complex scalar
// components and vectors with reproducible content:
//
//	rng := testutil.NewRNG(seed)
//	comps := rng.RealComponents(3)        // uniform [-1, 1)
//	v := rng.RealVector(3)                // euclid.Vector
//	w := rng.ComplexVector(3)             // complex components
package testutil
