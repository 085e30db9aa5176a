package scalar

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Epsilon is the absolute tolerance used by Equal and by real/complex
// narrowing. Two parts closer than this are considered identical.
const Epsilon = 1e-9

// Kind identifies the numeric plane a Scalar lives in.
type Kind uint8

const (
	// KindReal represents a real value.
	KindReal Kind = iota
	// KindComplex represents a value with a nonzero imaginary part.
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "Real"
	case KindComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}

// Scalar is a tagged real or complex number.
//
// The zero value is the real number 0, so freshly allocated slices of
// Scalar form a valid zero vector.
type Scalar struct {
	kind Kind
	re   float64
	im   float64
}

// Real returns a real Scalar.
func Real(v float64) Scalar {
	return Scalar{kind: KindReal, re: v}
}

// Complex returns a Scalar with the given real and imaginary parts.
// An imaginary part within Epsilon of zero narrows to KindReal.
func Complex(re, im float64) Scalar {
	if math.Abs(im) <= Epsilon {
		return Scalar{kind: KindReal, re: re}
	}
	return Scalar{kind: KindComplex, re: re, im: im}
}

// FromComplex128 converts a complex128 into a Scalar, narrowing to
// KindReal when the imaginary part is negligible.
func FromComplex128(z complex128) Scalar {
	return Complex(real(z), imag(z))
}

// Kind returns the discriminator of s.
func (s Scalar) Kind() Kind { return s.kind }

// IsComplex reports whether s has a nonzero imaginary part.
func (s Scalar) IsComplex() bool { return s.kind == KindComplex }

// Re returns the real part of s.
func (s Scalar) Re() float64 { return s.re }

// Im returns the imaginary part of s. It is 0 for KindReal.
func (s Scalar) Im() float64 { return s.im }

// Complex128 returns s as a complex128 regardless of kind.
func (s Scalar) Complex128() complex128 { return complex(s.re, s.im) }

// String renders s as "3.5" for reals and "1+2i" / "2i" / "1-2i" for
// complex values.
func (s Scalar) String() string {
	if s.kind == KindReal {
		return strconv.FormatFloat(s.re, 'g', -1, 64)
	}
	im := strconv.FormatFloat(s.im, 'g', -1, 64)
	if s.re == 0 {
		return im + "i"
	}
	re := strconv.FormatFloat(s.re, 'g', -1, 64)
	if s.im > 0 || math.IsNaN(s.im) {
		return re + "+" + im + "i"
	}
	return re + im + "i"
}

// Add returns a + b.
func Add(a, b Scalar) Scalar {
	if a.kind == KindReal && b.kind == KindReal {
		return Real(a.re + b.re)
	}
	return FromComplex128(a.Complex128() + b.Complex128())
}

// Subtract returns a - b.
func Subtract(a, b Scalar) Scalar {
	if a.kind == KindReal && b.kind == KindReal {
		return Real(a.re - b.re)
	}
	return FromComplex128(a.Complex128() - b.Complex128())
}

// Multiply returns a * b.
func Multiply(a, b Scalar) Scalar {
	if a.kind == KindReal && b.kind == KindReal {
		return Real(a.re * b.re)
	}
	return FromComplex128(a.Complex128() * b.Complex128())
}

// Divide returns a / b. Division of reals by the additive identity
// follows IEEE semantics (signed infinity or NaN); no guard is applied.
func Divide(a, b Scalar) Scalar {
	if a.kind == KindReal && b.kind == KindReal {
		return Real(a.re / b.re)
	}
	return FromComplex128(a.Complex128() / b.Complex128())
}

// Invert returns the multiplicative inverse 1 / a.
func Invert(a Scalar) Scalar {
	return Divide(Real(1), a)
}

// maxIntPow bounds the exponent range computed by repeated
// multiplication instead of cmplx.Pow.
const maxIntPow = 64

// Pow returns a raised to the power b. A negative real base with a
// fractional real exponent widens to a complex result.
func Pow(a, b Scalar) Scalar {
	if a.kind == KindReal && b.kind == KindReal {
		r := math.Pow(a.re, b.re)
		if !math.IsNaN(r) || math.IsNaN(a.re) || math.IsNaN(b.re) {
			return Real(r)
		}
		// NaN from a negative base and fractional exponent: widen.
	}
	if b.kind == KindReal && b.re == math.Trunc(b.re) && math.Abs(b.re) <= maxIntPow {
		// Integer exponents on complex bases multiply out directly.
		// cmplx.Pow round-trips through exp/log and turns exact sums
		// of squares (i^2 + 1^2) into tiny nonzero residues.
		return powInt(a, int(b.re))
	}
	return FromComplex128(cmplx.Pow(a.Complex128(), b.Complex128()))
}

func powInt(a Scalar, n int) Scalar {
	if n < 0 {
		return Invert(powInt(a, -n))
	}
	out := Real(1)
	for range n {
		out = Multiply(out, a)
	}
	return out
}

// Sqrt returns the square root of a, widening to complex when a is a
// negative real.
func Sqrt(a Scalar) Scalar {
	if a.kind == KindReal && a.re >= 0 {
		return Real(math.Sqrt(a.re))
	}
	return FromComplex128(cmplx.Sqrt(a.Complex128()))
}

// Acos returns the arc cosine of a in radians, widening to complex when
// a is a real outside [-1, 1].
func Acos(a Scalar) Scalar {
	if a.kind == KindReal && a.re >= -1 && a.re <= 1 {
		return Real(math.Acos(a.re))
	}
	return FromComplex128(cmplx.Acos(a.Complex128()))
}

// Equal reports whether a and b are equal within Epsilon, comparing real
// and imaginary parts independently.
func Equal(a, b Scalar) bool {
	return math.Abs(a.re-b.re) <= Epsilon && math.Abs(a.im-b.im) <= Epsilon
}

// Summation accumulates f(i) for i in [lo, hi] inclusive, strictly left
// to right so results are reproducible for non-associative numeric
// content. An empty range (hi < lo) yields the real additive identity.
func Summation(f func(i int) Scalar, lo, hi int) Scalar {
	sum := Real(0)
	for i := lo; i <= hi; i++ {
		sum = Add(sum, f(i))
	}
	return sum
}
