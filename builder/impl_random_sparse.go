// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p), the G(n,p) model.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - RNG required when 0 < p < 1 (else ErrNeedRandSource).
//   - Considers unordered pairs {i,j}, i<j, in lexicographic order; one Bernoulli
//     draw per pair, then one weight draw per included edge.
//   - The result may be disconnected; MST engines then return partial results.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling each possible edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters before touching g.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1.
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		// 3) One trial per unordered pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if !include && p > probMin {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
