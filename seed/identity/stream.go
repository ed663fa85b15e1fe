package identity

import (
	"math/rand/v2"
)

// Stream is the seeded random stream of one generation run. Every draw is a
// pure function of the seed and the call order, so callers must consume the
// stream in a fixed, documented order; the population engine's stage order
// is that order. There is exactly one Stream per run; sharing it between the
// vocabulary provider and the allocator is deliberate.
type Stream struct {
	rng *rand.Rand
}

// NewStream creates a Stream from the configured seed. PCG keeps the
// sequence stable across platforms and Go releases of the same major
// generator version.
func NewStream(seed int64) *Stream {
	return &Stream{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)<<32|0x9e3779b9))}
}

// IntN draws a uniform int in [0, n).
func (s *Stream) IntN(n int) int {
	return s.rng.IntN(n)
}

// Between draws a uniform int in [lo, hi], both ends inclusive.
func (s *Stream) Between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Float draws a uniform float64 in [0, 1).
func (s *Stream) Float() float64 {
	return s.rng.Float64()
}

// Chance draws once and reports true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Pick draws one element of xs. Panics on an empty slice, matching the
// contract that pools are never empty.
func Pick[T any](s *Stream, xs []T) T {
	return xs[s.rng.IntN(len(xs))]
}

// Sample draws k distinct elements of xs without replacement, preserving no
// particular order. k is clamped to len(xs). The input is not modified.
func Sample[T any](s *Stream, xs []T, k int) []T {
	if k > len(xs) {
		k = len(xs)
	}
	if k <= 0 {
		return nil
	}

	pool := make([]T, len(xs))
	copy(pool, xs)

	// Partial Fisher-Yates: only the first k positions are settled.
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}

// Shuffle permutes xs in place.
func Shuffle[T any](s *Stream, xs []T) {
	s.rng.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}
