package core

import (
	"math/rand"
	"time"
)

// Source supplies random integers to the generator and builder.
// *math/rand.Rand satisfies it, as does SimpleRNG.
type Source interface {
	// Intn returns a random int in [0, n). n must be positive.
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *SimpleRNG) Float() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// NewSource returns a Source for the given seed.
// Seed 0 means "seed from the clock", which is what production callers use.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRNG(uint64(seed))
}

// NewMathSource wraps math/rand for callers that prefer the standard generator.
func NewMathSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// shuffle performs a Fisher-Yates shuffle of n elements.
func shuffle(rng Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		swap(i, j)
	}
}

// between returns a random int in [lo, hi].
func between(rng Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
