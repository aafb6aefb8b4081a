// SPDX-License-Identifier: MIT
// Package: kgram/sampler
//
// rng.go — RNG ownership for Sampler.
//
// Policy:
//   • seed==0 ⇒ defaultSeed, so "zero value" runs are still reproducible.
//   • Option constructors panic on nil; sampling functions never panic.

package sampler

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for the given seed.
// seed==0 maps to a fixed default seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithRand attaches an explicit generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(s *Sampler) {
		s.rng = r
	}
}

// WithSeed attaches a fresh generator seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(s *Sampler) {
		s.rng = NewRand(seed)
	}
}

// Sampler owns one generator and draws indexes from weight vectors.
// Without options it uses the process-wide generator.
//
// A Sampler with its own generator is not safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// New returns a Sampler configured by opts (applied in order, last wins).
func New(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index draws from integer weights. See Discrete.
func (s *Sampler) Index(weights []int) (int, error) {
	return Discrete(s.rng, weights)
}

// IndexFloat draws from real-valued weights. See DiscreteFloat.
func (s *Sampler) IndexFloat(weights []float64) (int, error) {
	return DiscreteFloat(s.rng, weights)
}
