// Package random defines the random number capability consumed by map
// generation and spawning.
package random

import (
	"math/rand"
	"time"
)

// Rng is the randomness capability the simulation consumes.
//
// Between returns a value in the half-open range [low, high). When high <= low
// it returns low. Every call site relies on this convention.
type Rng interface {
	NextInt() int
	Between(low, high int) int
}

// Source is an Rng backed by math/rand.
type Source struct {
	rng *rand.Rand
}

// New creates a source seeded with seed. A seed of 0 picks a time-based seed.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NextInt returns a non-negative pseudo-random int.
func (s *Source) NextInt() int {
	return s.rng.Int()
}

// Between returns a value in [low, high).
func (s *Source) Between(low, high int) int {
	if high <= low {
		return low
	}
	return low + s.rng.Intn(high-low)
}

// ChooseElement returns a random element of items, or false for an empty slice.
func ChooseElement[T any](rng Rng, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rng.Between(0, len(items))], true
}
