package neatcore

import "math/rand"

// Rand is the PRNG capability the evolution core requires from its host.
// The generator is an injected dependency rather than a process global, so
// tests can be made deterministic and independent runs do not share state.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// mathRand adapts *math/rand.Rand to the Rand interface.
type mathRand struct {
	r *rand.Rand
}

// NewMathRand returns a Rand backed by the standard library's math/rand,
// seeded deterministically from seed.
func NewMathRand(seed int64) Rand {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Float64() float64 {
	return m.r.Float64()
}

func (m *mathRand) Intn(n int) int {
	return m.r.Intn(n)
}

// UniformWeight draws a fresh connection weight uniformly from [-2, 2], the
// typical range used throughout the genome data model.
func UniformWeight(rng Rand) float64 {
	return rng.Float64()*4.0 - 2.0
}

// RollPercent reports whether a mutation gated at percentage p should
// fire: 1 + rand()%100 <= p.
func RollPercent(rng Rand, p int) bool {
	roll := 1 + rng.Intn(100)
	return roll <= p
}
