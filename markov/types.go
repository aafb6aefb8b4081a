// SPDX-License-Identifier: MIT
// Package: kgram/markov
//
// types.go — alphabet constants, options and sentinel errors.

package markov

import (
	"fmt"

	"github.com/katalvlaran/kgram/sampler"
)

// Alphabet sizes.
const (
	// ASCII is the default alphabet: byte values 0..127.
	ASCII = 128
	// Bytes admits every byte value.
	Bytes = 256
)

// ErrInvalidArgument is the single error kind of this module, shared with
// package sampler.
var ErrInvalidArgument = sampler.ErrInvalidArgument

// Sentinel errors. Each wraps ErrInvalidArgument.
var (
	// ErrBadOrder indicates order < 1 or order >= len(text).
	ErrBadOrder = fmt.Errorf("%w: markov: order must satisfy 1 <= order < len(text)", ErrInvalidArgument)
	// ErrKgramLength indicates a kgram whose length differs from the model order.
	ErrKgramLength = fmt.Errorf("%w: markov: kgram has wrong length", ErrInvalidArgument)
	// ErrSymbolOutOfRange indicates a symbol outside the model alphabet.
	ErrSymbolOutOfRange = fmt.Errorf("%w: markov: symbol outside alphabet", ErrInvalidArgument)
	// ErrKgramNotFound indicates sampling from a kgram that never occurred.
	ErrKgramNotFound = fmt.Errorf("%w: markov: kgram not found", ErrInvalidArgument)
)

// config holds Build knobs. Defaults are resolved in newConfig.
type config struct {
	alphabet int
}

// Option customizes Build.
type Option func(*config)

// WithAlphabet sets the alphabet size: symbols are bytes in [0, size).
// Panics unless 1 <= size <= 256.
func WithAlphabet(size int) Option {
	if size < 1 || size > Bytes {
		panic("markov: WithAlphabet(size) requires 1 <= size <= 256")
	}
	return func(c *config) {
		c.alphabet = size
	}
}

// newConfig applies opts over the defaults, last wins.
func newConfig(opts ...Option) config {
	cfg := config{alphabet: ASCII}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// entry is the per-kgram record: total occurrences and per-symbol successor
// counts. The sum of next always equals total.
type entry struct {
	total int
	next  []int
}
