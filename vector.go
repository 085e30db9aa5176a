package euclid

import (
	"iter"
	"slices"
	"strings"

	"github.com/hupe1980/euclid/scalar"
)

// Vector is an immutable Euclidean vector. Vectors can be in the real or
// complex plane depending on how they are instantiated.
type Vector struct {
	components []scalar.Scalar
	magnitude  scalar.Scalar
	complex    bool
}

// newVector takes ownership of comps and establishes the Vector
// invariants: the precomputed magnitude sqrt(sum components[i]^2) and the
// complex flag derived from the magnitude's kind.
func newVector(comps []scalar.Scalar) Vector {
	two := scalar.Real(2)
	mag := scalar.Sqrt(scalar.Summation(func(i int) scalar.Scalar {
		return scalar.Pow(comps[i], two)
	}, 0, len(comps)-1))

	return Vector{
		components: comps,
		magnitude:  mag,
		complex:    mag.IsComplex(),
	}
}

// New constructs a Vector from its scalar components. The components are
// copied; later mutation of a slice passed by the caller has no effect on
// the vector.
func New(components ...scalar.Scalar) Vector {
	return newVector(slices.Clone(components))
}

// Between constructs the Vector of the directed segment from start to
// end, component i being end[i] - start[i]. It fails with
// *ErrInvalidDimension if the two coordinate slices differ in length.
func Between(start, end []scalar.Scalar) (Vector, error) {
	if len(start) != len(end) {
		return Vector{}, &ErrInvalidDimension{
			Dimension: len(end),
			reason:    "start and end coordinates have different lengths",
		}
	}

	comps := make([]scalar.Scalar, len(start))
	for i := range comps {
		comps[i] = scalar.Subtract(end[i], start[i])
	}

	return newVector(comps), nil
}

// Standard produces the standard basis vector for the given space index
// and number of dimensions: component space is 1, every other component
// is 0. For example, Standard(0, 2) is <1, 0> and Standard(2, 5) is
// <0, 0, 1, 0, 0>. All standard vectors are unit vectors.
//
// The space index must satisfy 0 <= space < dimensions; an out-of-range
// index panics.
func Standard(space, dimensions int) Vector {
	comps := make([]scalar.Scalar, dimensions)
	comps[space] = scalar.Real(1)
	return newVector(comps)
}

// Size returns the number of components in v.
func (v Vector) Size() int { return len(v.components) }

// At returns the scalar component at the given index. The index must be
// in [0, Size()); an out-of-range index panics.
func (v Vector) At(index int) scalar.Scalar { return v.components[index] }

// Magnitude returns the magnitude of v, computed once at construction.
// It is a complex scalar when the sum of squared components is negative.
func (v Vector) Magnitude() scalar.Scalar { return v.magnitude }

// IsComplex reports whether v is in the complex plane, i.e. whether its
// magnitude is a complex scalar.
func (v Vector) IsComplex() bool { return v.complex }

// Components returns a copy of the scalar components of v.
func (v Vector) Components() []scalar.Scalar {
	return slices.Clone(v.components)
}

// Transform produces a new vector with the given number of dimensions,
// copying the existing components into the leading slots and leaving the
// rest zero. It fails with *ErrInvalidDimension when asked for fewer
// dimensions than v has; a vector cannot be truncated.
func (v Vector) Transform(dimensions int) (Vector, error) {
	if dimensions < len(v.components) {
		return Vector{}, &ErrInvalidDimension{
			Dimension: dimensions,
			reason:    "cannot transform vector to fewer dimensions",
		}
	}

	comps := make([]scalar.Scalar, dimensions)
	copy(comps, v.components)

	return newVector(comps), nil
}

// Unit returns the vector of magnitude 1 in the direction of v. The zero
// vector has no direction; dividing by its zero magnitude follows the
// scalar tower's IEEE semantics unguarded.
func (v Vector) Unit() Vector {
	return v.Divide(v.magnitude)
}

// Multiply returns v scaled by n.
func (v Vector) Multiply(n scalar.Scalar) Vector {
	comps := make([]scalar.Scalar, len(v.components))
	for i, c := range v.components {
		comps[i] = scalar.Multiply(c, n)
	}

	return newVector(comps)
}

// Divide returns v scaled by the multiplicative inverse of n.
func (v Vector) Divide(n scalar.Scalar) Vector {
	return v.Multiply(scalar.Invert(n))
}

// Add returns the component-wise sum of v and o. It fails with
// *ErrDimensionMismatch if the vectors differ in size.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v.components) != len(o.components) {
		return Vector{}, &ErrDimensionMismatch{Expected: len(v.components), Actual: len(o.components)}
	}

	comps := make([]scalar.Scalar, len(v.components))
	for i := range comps {
		comps[i] = scalar.Add(v.components[i], o.components[i])
	}

	return newVector(comps), nil
}

// Subtract returns the component-wise difference v - o, computed as the
// sum of v and the negation of o so its numeric behavior matches the
// Add/Multiply composition exactly. It fails with *ErrDimensionMismatch
// if the vectors differ in size.
func (v Vector) Subtract(o Vector) (Vector, error) {
	return v.Add(o.Multiply(scalar.Real(-1)))
}

// Dot returns the dot product of v and o, accumulated strictly left to
// right over the component index. It fails with *ErrDimensionMismatch if
// the vectors differ in size.
func (v Vector) Dot(o Vector) (scalar.Scalar, error) {
	if len(v.components) != len(o.components) {
		return scalar.Scalar{}, &ErrDimensionMismatch{Expected: len(v.components), Actual: len(o.components)}
	}

	return scalar.Summation(func(i int) scalar.Scalar {
		return scalar.Multiply(v.components[i], o.components[i])
	}, 0, len(v.components)-1), nil
}

// Cross returns the cross product of v and o. Both operands must be 2D
// or 3D; anything else fails with *ErrDimensionMismatch. Two 2D vectors
// cross into the z axis of 3-space, so the result is always 3D:
//
//	<x1, y1> x <x2, y2> = <0, 0, x1*y2 - x2*y1>
//
// When one operand is 2D and the other 3D, the 2D operand is first
// padded to 3D and the standard 3D formula applies.
func (v Vector) Cross(o Vector) (Vector, error) {
	s1, s2 := len(v.components), len(o.components)

	if s1 < 2 || s1 > 3 || s2 < 2 || s2 > 3 {
		return Vector{}, &ErrDimensionMismatch{Expected: s1, Actual: s2, reason: "vectors are not 2D or 3D"}
	}

	if s1 == 2 && s2 == 2 {
		z := scalar.Subtract(
			scalar.Multiply(v.components[0], o.components[1]),
			scalar.Multiply(v.components[1], o.components[0]),
		)
		return New(scalar.Real(0), scalar.Real(0), z), nil
	}

	a, b := v, o
	if s1 != s2 {
		a, _ = v.Transform(3)
		b, _ = o.Transform(3)
	}

	return New(
		scalar.Subtract(scalar.Multiply(a.components[1], b.components[2]), scalar.Multiply(a.components[2], b.components[1])),
		scalar.Subtract(scalar.Multiply(a.components[2], b.components[0]), scalar.Multiply(a.components[0], b.components[2])),
		scalar.Subtract(scalar.Multiply(a.components[0], b.components[1]), scalar.Multiply(a.components[1], b.components[0])),
	), nil
}

// IsOrthogonal reports whether v and o are orthogonal, i.e. whether
// their dot product is zero within the scalar tower's tolerance. It
// fails with *ErrDimensionMismatch if the vectors differ in size.
func (v Vector) IsOrthogonal(o Vector) (bool, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return false, err
	}

	return scalar.Equal(dot, scalar.Real(0)), nil
}

// Project returns the projection of v onto o. It fails with
// *ErrDimensionMismatch if the vectors differ in size.
func (v Vector) Project(o Vector) (Vector, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return Vector{}, err
	}

	magSquared := scalar.Pow(o.magnitude, scalar.Real(2))

	return o.Multiply(dot).Divide(magSquared), nil
}

// Angle returns the angle between v and o in radians, acos of the dot
// product over the product of magnitudes. Domain violations (a cosine
// outside [-1, 1] from rounding, or zero magnitudes) follow the scalar
// tower's widening and IEEE semantics. It fails with
// *ErrDimensionMismatch if the vectors differ in size.
func (v Vector) Angle(o Vector) (scalar.Scalar, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return scalar.Scalar{}, err
	}

	return scalar.Acos(scalar.Divide(dot, scalar.Multiply(v.magnitude, o.magnitude))), nil
}

// All returns an iterator over (index, component) pairs in ascending
// index order.
func (v Vector) All() iter.Seq2[int, scalar.Scalar] {
	return func(yield func(int, scalar.Scalar) bool) {
		for i, c := range v.components {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Values returns an iterator over the components in ascending index
// order, without indices.
func (v Vector) Values() iter.Seq[scalar.Scalar] {
	return func(yield func(scalar.Scalar) bool) {
		for _, c := range v.components {
			if !yield(c) {
				return
			}
		}
	}
}

// Equal reports whether v and o have the same size and pairwise equal
// components under the scalar tower's tolerance-aware equality.
func (v Vector) Equal(o Vector) bool {
	if len(v.components) != len(o.components) {
		return false
	}

	for i := range v.components {
		if !scalar.Equal(v.components[i], o.components[i]) {
			return false
		}
	}

	return true
}

// String renders v as "<c0, c1, ..., cN-1>".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("<")

	for i, c := range v.components {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}

	sb.WriteString(">")

	return sb.String()
}
