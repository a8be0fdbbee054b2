// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// config.go — immutable configuration resolved from Options.

package builder

import "math/rand"

// builderConfig is resolved once per Build call and passed by value to every
// constructor, so constructors cannot leak state into each other.
type builderConfig struct {
	idFn     IDFn       // index → vertex ID
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // per-edge weight generator
}

// newBuilderConfig applies opts over the defaults:
// decimal IDs, no RNG, constant DefaultEdgeWeight.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
