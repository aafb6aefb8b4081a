// SPDX-License-Identifier: MIT
// Package: kgram/markov
//
// model.go — construction and queries of the frequency model.

package markov

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/kgram/sampler"
)

// Model is a k-th order Markov model of a text. It is immutable after Build.
type Model struct {
	order    int
	alphabet int
	table    map[string]*entry
}

// Build constructs the model of the given order for text.
//
// Steps:
//  1. Validate 1 <= order < len(text) and that every byte is in the alphabet.
//  2. For i in 0..N-1: key = ring[i..i+order), succ = ring[i+order], where
//     ring[j] = text[j mod N].
//  3. table[key].total++ and table[key].next[succ]++ (record created on first sight).
//
// Complexity: O(N·order) time.
func Build(text string, order int, opts ...Option) (*Model, error) {
	cfg := newConfig(opts...)

	n := len(text)
	if order < 1 || order >= n {
		return nil, fmt.Errorf("build order=%d len=%d: %w", order, n, ErrBadOrder)
	}
	for i := 0; i < n; i++ {
		if int(text[i]) >= cfg.alphabet {
			return nil, fmt.Errorf("build: byte %d at offset %d: %w", text[i], i, ErrSymbolOutOfRange)
		}
	}

	m := &Model{
		order:    order,
		alphabet: cfg.alphabet,
		table:    make(map[string]*entry),
	}

	var sb strings.Builder
	for i := 0; i < n; i++ {
		var key string
		if i+order <= n {
			key = text[i : i+order]
		} else {
			// kgram crosses the end of the text: assemble it from the ring.
			sb.Reset()
			for j := i; j < i+order; j++ {
				sb.WriteByte(text[wrap(j, n)])
			}
			key = sb.String()
		}
		succ := text[wrap(i+order, n)]

		e, ok := m.table[key]
		if !ok {
			e = &entry{next: make([]int, m.alphabet)}
			m.table[key] = e
		}
		e.total++
		e.next[succ]++
	}

	return m, nil
}

// wrap maps a ring index onto the text. Callers never pass j >= 2n.
func wrap(j, n int) int {
	if j >= n {
		return j - n
	}
	return j
}

// Order returns the kgram length k.
func (m *Model) Order() int {
	return m.order
}

// Alphabet returns the alphabet size in use.
func (m *Model) Alphabet() int {
	return m.alphabet
}

// Frequency returns how many times kgram occurs in the circular text.
// A kgram that never occurred yields 0.
func (m *Model) Frequency(kgram string) (int, error) {
	if err := m.checkKgram(kgram); err != nil {
		return 0, err
	}
	e, ok := m.table[kgram]
	if !ok {
		return 0, nil
	}
	return e.total, nil
}

// FrequencyOf returns how many times c immediately follows kgram.
// A kgram that never occurred yields 0; c outside the alphabet is an error.
func (m *Model) FrequencyOf(kgram string, c byte) (int, error) {
	if err := m.checkKgram(kgram); err != nil {
		return 0, err
	}
	if int(c) >= m.alphabet {
		return 0, fmt.Errorf("frequency %q: symbol %d: %w", kgram, c, ErrSymbolOutOfRange)
	}
	e, ok := m.table[kgram]
	if !ok {
		return 0, nil
	}
	return e.next[c], nil
}

// Successors returns a copy of the successor counts of kgram, indexed by
// symbol. It returns nil for a kgram that never occurred.
func (m *Model) Successors(kgram string) ([]int, error) {
	if err := m.checkKgram(kgram); err != nil {
		return nil, err
	}
	e, ok := m.table[kgram]
	if !ok {
		return nil, nil
	}
	return append([]int(nil), e.next...), nil
}

// Probabilities returns the successor distribution of kgram.
func (m *Model) Probabilities(kgram string) ([]float64, error) {
	e, err := m.lookup(kgram)
	if err != nil {
		return nil, err
	}
	return sampler.Normalize(e.next)
}

// Sample draws a successor of kgram using the process-wide generator.
func (m *Model) Sample(kgram string) (byte, error) {
	return m.SampleRand(nil, kgram)
}

// SampleRand draws a successor of kgram with probability proportional to its
// count, using r (nil selects the process-wide generator).
func (m *Model) SampleRand(r *rand.Rand, kgram string) (byte, error) {
	e, err := m.lookup(kgram)
	if err != nil {
		return 0, err
	}
	idx, err := sampler.Discrete(r, e.next)
	if err != nil {
		return 0, fmt.Errorf("sample %q: %w", kgram, err)
	}
	return byte(idx), nil
}

// Kgrams returns the distinct kgrams in ascending order.
func (m *Model) Kgrams() []string {
	keys := make([]string, 0, len(m.table))
	for k := range m.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct kgrams.
func (m *Model) Len() int {
	return len(m.table)
}

// Observations returns the number of (kgram, successor) pairs recorded,
// which equals the length of the source text.
func (m *Model) Observations() int {
	var sum int
	for _, e := range m.table {
		sum += e.total
	}
	return sum
}

// String renders one line per kgram in ascending order:
//
//	<kgram>: <c> <count> <c> <count> ...
//
// listing only successors with a non-zero count.
func (m *Model) String() string {
	var sb strings.Builder
	for _, k := range m.Kgrams() {
		e := m.table[k]
		sb.WriteString(k)
		sb.WriteByte(':')
		for c, n := range e.next {
			if n == 0 {
				continue
			}
			sb.WriteByte(' ')
			sb.WriteByte(byte(c))
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Model) checkKgram(kgram string) error {
	if len(kgram) != m.order {
		return fmt.Errorf("kgram %q (len %d, order %d): %w", kgram, len(kgram), m.order, ErrKgramLength)
	}
	return nil
}

// lookup validates kgram and returns its record, or ErrKgramNotFound.
func (m *Model) lookup(kgram string) (*entry, error) {
	if err := m.checkKgram(kgram); err != nil {
		return nil, err
	}
	e, ok := m.table[kgram]
	if !ok {
		return nil, fmt.Errorf("kgram %q: %w", kgram, ErrKgramNotFound)
	}
	return e, nil
}
