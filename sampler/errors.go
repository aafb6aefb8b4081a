// SPDX-License-Identifier: MIT
// Package: kgram/sampler
//
// errors.go — sentinel errors for the sampler package.
//
// Error policy:
//   • ErrInvalidArgument is the single error kind; every other sentinel wraps it.
//   • Callers branch with errors.Is, never on message text.
//   • Call sites attach context with %w.

package sampler

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root kind for every caller error reported by this
// module. Packages layered on top of sampler reuse it.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNoMass indicates a weight vector that is empty or sums to zero.
var ErrNoMass = fmt.Errorf("%w: sampler: no probability mass", ErrInvalidArgument)

// ErrNegativeWeight indicates a weight below zero, or a non-finite float weight.
var ErrNegativeWeight = fmt.Errorf("%w: sampler: negative or non-finite weight", ErrInvalidArgument)

// ErrWeightOverflow indicates that the sum of integer weights exceeds math.MaxInt64.
var ErrWeightOverflow = fmt.Errorf("%w: sampler: weight sum overflows int64", ErrInvalidArgument)
