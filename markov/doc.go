// SPDX-License-Identifier: MIT

// Package markov builds a k-th order character Markov model of a text.
//
// What:
//
//   - Build scans a text once and records, for every length-k substring
//     ("kgram"), how often it occurs and how often each symbol follows it.
//   - Frequency, FrequencyOf and Successors query those counts.
//   - Sample / SampleRand draw a successor symbol with probability
//     proportional to its observed count (delegating to package sampler).
//   - String renders the model for diagnostics, one kgram per line.
//
// Circular text:
//
//	The text is treated as a ring. Position i contributes the kgram
//	text[i..i+k) and the successor text[i+k], with every index taken mod N.
//	So each of the N positions yields exactly one observation, and
//	Observations() == N. For "banana" with k=2 the last kgram "na" is
//	followed by 'b', wrapping to the start.
//
// Alphabet:
//
//	Symbols are bytes below the alphabet size (ASCII, 128, by default; see
//	WithAlphabet). Build rejects a text containing a byte outside it.
//
// Complexity:
//
//   - Build:                     O(N·k) time, O(D·(k+A)) memory (D distinct kgrams, A alphabet).
//   - Frequency / FrequencyOf:   O(k) expected.
//   - Sample:                    O(A).
//   - String / Kgrams:           O(D log D).
//
// Concurrency:
//
//	A *Model is immutable once Build returns; all methods are safe for
//	concurrent use. SampleRand is safe only if the caller confines the
//	*rand.Rand it passes to a single goroutine.
//
// Errors (all wrap ErrInvalidArgument):
//
//   - ErrBadOrder:         order < 1 or order >= len(text).
//   - ErrKgramLength:      query kgram length differs from the order.
//   - ErrSymbolOutOfRange: a symbol outside the alphabet.
//   - ErrKgramNotFound:    sampling a kgram that never occurred.
package markov
