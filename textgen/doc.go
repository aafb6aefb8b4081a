// SPDX-License-Identifier: MIT

// Package textgen drives a markov.Model to produce text.
//
// Loop:
//
//	out := seed                      // exactly Order() bytes
//	while len(out) < length:
//	    c := model.SampleRand(rng, out[len(out)-k:])
//	    out += c
//
// The first context is conventionally the first k bytes of the corpus
// (see Seed), which guarantees every context met along the way was observed:
// the model is built over the circular text, so every kgram it emits has a
// recorded successor.
//
// Concurrency:
//
//	Each Generator owns its *rand.Rand and must stay on one goroutine.
//	Several Generators may share one *markov.Model.
package textgen
