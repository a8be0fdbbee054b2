// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using `%w`.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX..., *WeightFn).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not complete a construction,
// e.g. a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates ByName was asked for a topology it does not know.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
