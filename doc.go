// Package kgram models text as a k-th order Markov chain over characters
// and generates new text with the same local statistics.
//
// What is in the box:
//
//	sampler/  — draw an index from a non-negative weight vector (prefix sums + binary search)
//	markov/   — the frequency model: kgram counts and per-kgram successor counts
//	textgen/  — the generation loop: seed with k characters, sample, slide the window
//	cmd/textgen — stdin → model → stdout command
//
// Model in one picture (order 2, text "banana", read as a ring):
//
//	ab → a×1
//	an → a×2
//	ba → n×1
//	na → b×1 n×1   ('b' comes from wrapping past the end)
//
// Every one of the N text positions contributes exactly one
// (kgram, successor) observation, so the counts always add up to N.
//
// Errors are sentinels that all wrap sampler.ErrInvalidArgument; branch on
// them with errors.Is. A built model is read-only and safe to share across
// goroutines; random streams are not, so each generation task owns one.
//
//	go get github.com/katalvlaran/kgram
package kgram
