package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func(a, b Scalar) Scalar
		a, b     Scalar
		expected Scalar
	}{
		{"AddReal", Add, Real(1), Real(2), Real(3)},
		{"AddNegative", Add, Real(1.5), Real(-2.5), Real(-1)},
		{"AddComplex", Add, Complex(1, 2), Complex(3, -1), Complex(4, 1)},
		{"AddMixed", Add, Real(1), Complex(0, 1), Complex(1, 1)},
		{"SubtractReal", Subtract, Real(5), Real(3), Real(2)},
		{"SubtractComplex", Subtract, Complex(1, 2), Complex(1, 1), Complex(0, 1)},
		{"MultiplyReal", Multiply, Real(3), Real(4), Real(12)},
		{"MultiplyComplex", Multiply, Complex(0, 1), Complex(0, 1), Real(-1)},
		{"MultiplyMixed", Multiply, Real(2), Complex(1, 1), Complex(2, 2)},
		{"DivideReal", Divide, Real(6), Real(3), Real(2)},
		{"DivideComplex", Divide, Complex(0, 2), Complex(0, 1), Real(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(tt.a, tt.b)
			assert.True(t, Equal(tt.expected, got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, tt.expected.Kind(), got.Kind())
		})
	}
}

func TestNarrowing(t *testing.T) {
	// A complex constructor with a negligible imaginary part collapses
	// to a real value.
	s := Complex(3, 1e-12)
	assert.Equal(t, KindReal, s.Kind())
	assert.False(t, s.IsComplex())
	assert.Equal(t, 3.0, s.Re())
	assert.Equal(t, 0.0, s.Im())

	// i * i = -1 narrows back to the real plane.
	p := Multiply(Complex(0, 1), Complex(0, 1))
	assert.Equal(t, KindReal, p.Kind())
	assert.InDelta(t, -1.0, p.Re(), 1e-12)
}

func TestSqrt(t *testing.T) {
	t.Run("PositiveReal", func(t *testing.T) {
		got := Sqrt(Real(4))
		assert.Equal(t, KindReal, got.Kind())
		assert.InDelta(t, 2.0, got.Re(), 1e-12)
	})

	t.Run("NegativeRealWidens", func(t *testing.T) {
		got := Sqrt(Real(-4))
		require.True(t, got.IsComplex())
		assert.InDelta(t, 0.0, got.Re(), 1e-12)
		assert.InDelta(t, 2.0, got.Im(), 1e-12)
	})

	t.Run("Complex", func(t *testing.T) {
		// sqrt(2i) = 1 + i
		got := Sqrt(Complex(0, 2))
		require.True(t, got.IsComplex())
		assert.InDelta(t, 1.0, got.Re(), 1e-12)
		assert.InDelta(t, 1.0, got.Im(), 1e-12)
	})

	t.Run("Zero", func(t *testing.T) {
		got := Sqrt(Real(0))
		assert.Equal(t, KindReal, got.Kind())
		assert.Equal(t, 0.0, got.Re())
	})
}

func TestPow(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Scalar
		expected Scalar
	}{
		{"Square", Real(3), Real(2), Real(9)},
		{"NegativeBaseIntegerExponent", Real(-2), Real(3), Real(-8)},
		{"FractionalExponent", Real(9), Real(0.5), Real(3)},
		{"ZeroExponent", Real(5), Real(0), Real(1)},
		{"ImaginarySquare", Complex(0, 2), Real(2), Real(-4)},
		{"ComplexSquare", Complex(1, 1), Real(2), Complex(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pow(tt.a, tt.b)
			assert.True(t, Equal(tt.expected, got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, tt.expected.Kind(), got.Kind())
		})
	}

	t.Run("NegativeBaseFractionalExponentWidens", func(t *testing.T) {
		// (-4)^0.5 = 2i
		got := Pow(Real(-4), Real(0.5))
		require.True(t, got.IsComplex())
		assert.InDelta(t, 0.0, got.Re(), 1e-9)
		assert.InDelta(t, 2.0, got.Im(), 1e-9)
	})
}

func TestAcos(t *testing.T) {
	t.Run("InDomain", func(t *testing.T) {
		got := Acos(Real(0))
		assert.Equal(t, KindReal, got.Kind())
		assert.InDelta(t, math.Pi/2, got.Re(), 1e-12)

		got = Acos(Real(1))
		assert.Equal(t, 0.0, got.Re())

		got = Acos(Real(-1))
		assert.InDelta(t, math.Pi, got.Re(), 1e-12)
	})

	t.Run("OutsideDomainWidens", func(t *testing.T) {
		got := Acos(Real(2))
		assert.True(t, got.IsComplex())
	})
}

func TestInvert(t *testing.T) {
	got := Invert(Real(4))
	assert.Equal(t, KindReal, got.Kind())
	assert.InDelta(t, 0.25, got.Re(), 1e-12)

	// 1/i = -i
	got = Invert(Complex(0, 1))
	require.True(t, got.IsComplex())
	assert.InDelta(t, 0.0, got.Re(), 1e-12)
	assert.InDelta(t, -1.0, got.Im(), 1e-12)

	// Inversion of the additive identity follows IEEE semantics.
	got = Invert(Real(0))
	assert.True(t, math.IsInf(got.Re(), 1))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Scalar
		expected bool
	}{
		{"Identical", Real(1), Real(1), true},
		{"WithinTolerance", Real(1), Real(1 + 1e-12), true},
		{"OutsideTolerance", Real(1), Real(1 + 1e-6), false},
		{"ComplexEqual", Complex(1, 2), Complex(1, 2), true},
		{"ComplexImagDiffers", Complex(1, 2), Complex(1, 3), false},
		{"RealVsComplex", Real(1), Complex(1, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
		})
	}
}

func TestSummation(t *testing.T) {
	t.Run("Range", func(t *testing.T) {
		// 1 + 2 + 3 + 4 + 5
		got := Summation(func(i int) Scalar { return Real(float64(i)) }, 1, 5)
		assert.InDelta(t, 15.0, got.Re(), 1e-12)
	})

	t.Run("Empty", func(t *testing.T) {
		got := Summation(func(i int) Scalar { return Real(1) }, 0, -1)
		assert.Equal(t, Real(0), got)
	})

	t.Run("LeftToRight", func(t *testing.T) {
		var order []int
		Summation(func(i int) Scalar {
			order = append(order, i)
			return Real(0)
		}, 0, 3)
		assert.Equal(t, []int{0, 1, 2, 3}, order)
	})

	t.Run("ComplexTerms", func(t *testing.T) {
		// i + i = 2i
		got := Summation(func(i int) Scalar { return Complex(0, 1) }, 0, 1)
		require.True(t, got.IsComplex())
		assert.InDelta(t, 2.0, got.Im(), 1e-12)
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		s        Scalar
		expected string
	}{
		{"Real", Real(3), "3"},
		{"RealFraction", Real(0.5), "0.5"},
		{"RealNegative", Real(-2), "-2"},
		{"Complex", Complex(1, 2), "1+2i"},
		{"ComplexNegativeImag", Complex(1, -2), "1-2i"},
		{"PureImaginary", Complex(0, 3), "3i"},
		{"Zero", Scalar{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.s.String())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Real", KindReal.String())
	assert.Equal(t, "Complex", KindComplex.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

func TestZeroValue(t *testing.T) {
	// The zero value of Scalar is the real number 0, so allocated
	// slices form valid zero vectors.
	var s Scalar
	assert.Equal(t, KindReal, s.Kind())
	assert.True(t, Equal(s, Real(0)))
}

func TestComplex128RoundTrip(t *testing.T) {
	s := FromComplex128(complex(3, 4))
	require.True(t, s.IsComplex())
	assert.Equal(t, complex(3, 4), s.Complex128())
}
