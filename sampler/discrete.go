// SPDX-License-Identifier: MIT
// Package: kgram/sampler
//
// discrete.go — weighted index selection over cumulative weights.

package sampler

import (
	"math"
	"math/rand"
	"sort"

	"github.com/gonum/floats"
)

// Discrete returns index i with probability weights[i]/sum(weights).
//
// Steps:
//  1. Validate: every weight >= 0, sum > 0, sum fits in int64.
//  2. Build prefix sums p[i] = weights[0] + ... + weights[i].
//  3. Draw u uniformly from [0, sum).
//  4. Return the smallest i with p[i] > u.
//
// A nil r uses the process-wide generator.
//
// Complexity: O(n) time, O(n) memory.
func Discrete(r *rand.Rand, weights []int) (int, error) {
	prefix, total, err := prefixSums(weights)
	if err != nil {
		return 0, err
	}

	var u int64
	if r == nil {
		u = rand.Int63n(total)
	} else {
		u = r.Int63n(total)
	}

	return sort.Search(len(prefix), func(i int) bool { return prefix[i] > u }), nil
}

// DiscreteFloat returns index i with probability weights[i]/sum(weights) for
// real-valued weights. NaN and ±Inf are rejected with ErrNegativeWeight.
//
// Complexity: O(n) time, O(n) memory.
func DiscreteFloat(r *rand.Rand, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, ErrNoMass
	}
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrNegativeWeight
		}
	}

	cum := floats.CumSum(make([]float64, len(weights)), weights)
	total := cum[len(cum)-1]
	if total <= 0 {
		return 0, ErrNoMass
	}
	if math.IsInf(total, 0) {
		return 0, ErrWeightOverflow
	}

	var f float64
	if r == nil {
		f = rand.Float64()
	} else {
		f = r.Float64()
	}
	u := f * total

	i := sort.Search(len(cum), func(i int) bool { return cum[i] > u })
	if i == len(cum) {
		// f*total rounded up to total; fall back to the last positive weight.
		i = lastPositive(weights)
	}
	return i, nil
}

// Normalize returns the probability vector weights[i]/sum(weights).
// It applies the same validation as Discrete.
func Normalize(weights []int) ([]float64, error) {
	_, total, err := prefixSums(weights)
	if err != nil {
		return nil, err
	}

	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = float64(w)
	}
	floats.Scale(1/float64(total), probs)
	return probs, nil
}

// prefixSums validates weights and returns their running sums and the total.
func prefixSums(weights []int) ([]int64, int64, error) {
	if len(weights) == 0 {
		return nil, 0, ErrNoMass
	}

	prefix := make([]int64, len(weights))
	var total int64
	for i, w := range weights {
		if w < 0 {
			return nil, 0, ErrNegativeWeight
		}
		if int64(w) > math.MaxInt64-total {
			return nil, 0, ErrWeightOverflow
		}
		total += int64(w)
		prefix[i] = total
	}
	if total == 0 {
		return nil, 0, ErrNoMass
	}
	return prefix, total, nil
}

// lastPositive returns the highest index holding a positive weight.
func lastPositive(weights []float64) int {
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}
