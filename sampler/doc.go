// SPDX-License-Identifier: MIT

// Package sampler draws indexes from discrete weight vectors.
//
// What:
//
//   - Discrete picks index i with probability weights[i]/sum(weights) for
//     non-negative integer weights.
//   - DiscreteFloat does the same for real-valued weights.
//   - Normalize turns an integer weight vector into a probability vector.
//   - Sampler bundles a private *rand.Rand with the functions above.
//
// How:
//
//	Prefix sums are built once per call and the draw u ∈ [0, sum) is located
//	with a binary search for the first prefix strictly greater than u.
//	Zero-weight indexes occupy an empty interval and are never returned.
//
// Complexity:
//
//   - Discrete, DiscreteFloat: O(n) time (prefix sums) + O(log n) search, O(n) memory.
//   - Normalize:               O(n) time, O(n) memory.
//
// Randomness and concurrency:
//
//   - A nil *rand.Rand selects the process-wide generator (top-level math/rand
//     functions), which is safe for concurrent use.
//   - math/rand.Rand is NOT goroutine-safe. A Sampler, or a *rand.Rand passed
//     explicitly, must be confined to one goroutine. Give each generation task
//     its own instance (see WithSeed).
//
// Errors:
//
//   - ErrNoMass:         empty vector or all weights zero.
//   - ErrNegativeWeight: a weight is negative (or NaN/Inf for float weights).
//   - ErrWeightOverflow: the integer sum does not fit in int64.
//
// All of them wrap ErrInvalidArgument.
package sampler
