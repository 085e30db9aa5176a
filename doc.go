// Package euclid provides an immutable Euclidean vector over a generic
// real/complex scalar tower.
//
// A Vector is a fixed-size ordered tuple of scalar.Scalar components with
// a magnitude precomputed at construction. Vectors live in the real or
// complex plane depending on their content: when the sum of squared
// components is negative the magnitude widens to a complex scalar and
// IsComplex reports true.
//
// # Quick Start
//
//	v := euclid.New(scalar.Real(1), scalar.Real(2))
//	w := euclid.New(scalar.Real(4), scalar.Real(6))
//
//	sum, _ := v.Add(w)
//	dot, _ := v.Dot(w)
//	fmt.Println(sum, dot, v.Magnitude())
//
// Vectors can also be built from a directed segment or as standard basis
// vectors:
//
//	v, _ := euclid.Between(start, end) // components end[i] - start[i]
//	e0 := euclid.Standard(0, 3)        // <1, 0, 0>
//
// # Immutability
//
// Every constructor copies its input and every operation returns a
// freshly allocated Vector; no component storage is ever shared between
// instances or with callers. Vectors are therefore safe for concurrent
// readers without synchronization.
//
// # Errors
//
// Binary operations on vectors of incompatible size fail with
// *ErrDimensionMismatch; constructing from coordinate slices of unequal
// length or shrinking via Transform fails with *ErrInvalidDimension.
// Numeric edge cases (division by zero, arc-cosine domain) follow the
// scalar tower's widening and IEEE semantics and are not guarded here.
package euclid
