// Package rng provides the single deterministic random stream the
// sampler draws from. It wraps *math/rand.Rand the way tsp/rng.go does
// in the teacher package: one explicit stream, seeded once at
// construction, never shared across goroutines, never reseeded mid-run.
package rng

import "math/rand"

// Stream is a deterministic uniform-integer/real generator. Two Streams
// constructed with the same seed produce byte-identical sequences,
// which is what makes whole-run output reproducible (spec.md §8,
// property 9).
type Stream struct {
	r *rand.Rand
}

// New returns a Stream seeded deterministically from seed.
// Complexity: O(1).
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniform integer in [0, n). Panics if n <= 0, matching
// math/rand's own contract for Intn.
func (s *Stream) IntN(n int) int {
	return s.r.Intn(n)
}

// Float64 returns a uniform real in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}
