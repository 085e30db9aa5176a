package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/euclid"
	"github.com/hupe1980/euclid/scalar"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// RealComponents generates dimensions real scalar components with values
// in range [-1, 1). Locks only once per call.
func (r *RNG) RealComponents(dimensions int) []scalar.Scalar {
	r.mu.Lock()
	defer r.mu.Unlock()

	comps := make([]scalar.Scalar, dimensions)
	for i := range comps {
		comps[i] = scalar.Real(r.rand.Float64()*2 - 1)
	}

	return comps
}

// ComplexComponents generates dimensions complex scalar components with
// real and imaginary parts in range [-1, 1). Imaginary parts are kept
// away from zero so the components do not narrow to reals.
func (r *RNG) ComplexComponents(dimensions int) []scalar.Scalar {
	r.mu.Lock()
	defer r.mu.Unlock()

	comps := make([]scalar.Scalar, dimensions)
	for i := range comps {
		im := r.rand.Float64()*2 - 1
		if im >= 0 {
			im += 0.1
		} else {
			im -= 0.1
		}
		comps[i] = scalar.Complex(r.rand.Float64()*2-1, im)
	}

	return comps
}

// RealVector generates a random real-valued Vector of the given
// dimensionality.
func (r *RNG) RealVector(dimensions int) euclid.Vector {
	return euclid.New(r.RealComponents(dimensions)...)
}

// ComplexVector generates a random complex-valued Vector of the given
// dimensionality.
func (r *RNG) ComplexVector(dimensions int) euclid.Vector {
	return euclid.New(r.ComplexComponents(dimensions)...)
}

// RealVectors generates num random real-valued Vectors, all of the given
// dimensionality.
func (r *RNG) RealVectors(num, dimensions int) []euclid.Vector {
	vectors := make([]euclid.Vector, num)
	for i := range vectors {
		vectors[i] = r.RealVector(dimensions)
	}

	return vectors
}
