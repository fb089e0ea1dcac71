// Package dice provides the seedable uniform die source used by the search,
// rollouts, and self-play harness.
package dice

import "math/rand"

// Source draws a uniform integer in [1,6]. Each caller must own its own
// Source; there is no shared/ambient generator (spec §4.2, §5, §9).
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded from seed. Two Sources built from the same
// seed produce identical roll sequences.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform value in [1,6].
func (s *Source) Roll() int {
	return s.rng.Intn(6) + 1
}

// Rand exposes the underlying generator for callers that also need
// uniform floats or shuffles (e.g. the default-opening layout, or
// move selection during rollout).
func (s *Source) Rand() *rand.Rand {
	return s.rng
}
