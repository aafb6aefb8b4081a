// SPDX-License-Identifier: MIT
// Package: kgram/textgen
//
// generator.go — seeded generation loop over a markov.Model.

package textgen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/kgram/markov"
	"github.com/katalvlaran/kgram/sampler"
)

var (
	// ErrNilModel indicates New was called without a model.
	ErrNilModel = fmt.Errorf("%w: textgen: model is nil", markov.ErrInvalidArgument)
	// ErrBadLength indicates a target length shorter than the model order.
	ErrBadLength = fmt.Errorf("%w: textgen: length must be >= order", markov.ErrInvalidArgument)
)

// Option configures a Generator.
type Option func(*Generator)

// WithRand attaches an explicit generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("textgen: WithRand(nil)")
	}
	return func(g *Generator) {
		g.rng = r
	}
}

// WithSeed attaches a fresh generator seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = sampler.NewRand(seed)
	}
}

// Generator emits text from a model with its own random stream.
type Generator struct {
	model *markov.Model
	rng   *rand.Rand
}

// New returns a Generator for m. Without WithRand/WithSeed it is seeded
// with the default seed, so runs are reproducible unless told otherwise.
func New(m *markov.Model, opts ...Option) (*Generator, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	g := &Generator{model: m}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = sampler.NewRand(0)
	}
	return g, nil
}

// Seed returns the first order bytes of text, the conventional first context.
func Seed(text string, order int) (string, error) {
	if order < 1 || order >= len(text) {
		return "", fmt.Errorf("seed order=%d len=%d: %w", order, len(text), markov.ErrBadOrder)
	}
	return text[:order], nil
}

// Generate returns exactly length bytes: seed followed by length-Order()
// sampled bytes.
func (g *Generator) Generate(seed string, length int) (string, error) {
	buf := make([]byte, 0, max(length, 0))
	err := g.run(seed, length, func(c byte) error {
		buf = append(buf, c)
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Stream writes the same bytes Generate would return to w.
func (g *Generator) Stream(w io.Writer, seed string, length int) error {
	bw := bufio.NewWriter(w)
	if err := g.run(seed, length, bw.WriteByte); err != nil {
		return err
	}
	return bw.Flush()
}

// run validates the arguments and feeds every output byte to emit.
// The context is kept as a k-byte window over the trailing output.
func (g *Generator) run(seed string, length int, emit func(byte) error) error {
	k := g.model.Order()
	if len(seed) != k {
		return fmt.Errorf("generate: seed %q (len %d, order %d): %w", seed, len(seed), k, markov.ErrKgramLength)
	}
	if length < k {
		return fmt.Errorf("generate: length %d < order %d: %w", length, k, ErrBadLength)
	}

	window := []byte(seed)
	for i := 0; i < k; i++ {
		if err := emit(window[i]); err != nil {
			return err
		}
	}

	for i := k; i < length; i++ {
		c, err := g.model.SampleRand(g.rng, string(window))
		if err != nil {
			return fmt.Errorf("generate: step %d: %w", i-k, err)
		}
		if err := emit(c); err != nil {
			return err
		}
		copy(window, window[1:])
		window[k-1] = c
	}
	return nil
}
