// Package scalar provides the numeric tower for euclid: a tagged
// real/complex scalar value and the arithmetic, power/root, and
// trigonometric operations closed over it.
//
// A Scalar is a small value union discriminated by Kind. Operations that
// are undefined over the reals (square root of a negative, arc cosine
// outside [-1, 1]) widen their result to KindComplex instead of failing:
//
//	scalar.Sqrt(scalar.Real(-4))  // 2i, KindComplex
//	scalar.Sqrt(scalar.Real(4))   // 2, KindReal
//
// Widening is symmetric: a complex intermediate whose imaginary part
// collapses to zero narrows back to KindReal, so Kind always reflects the
// numeric content of the value, not the history of how it was computed.
//
// The zero value of Scalar is the real number 0.
package scalar
