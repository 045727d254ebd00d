package selection

import "math/rand/v2"

// Rand is the source of randomness used for shuffling. *rand.Rand from
// math/rand/v2 satisfies it; tests pass a seeded generator.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n > 0.
	IntN(n int) int
}

// processRand draws from the process-wide generator.
type processRand struct{}

func (processRand) IntN(n int) int { return rand.IntN(n) }

// NewSeeded returns a deterministic generator for reproducible selection.
func NewSeeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// shuffle applies a Fisher–Yates permutation to s in place.
func shuffle[T any](rng Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
