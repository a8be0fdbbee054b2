// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the fixed hub "Center" first, then n-1 leaves via cfg.idFn(0..n-2).
//   - Emits Center—leaf(i) for i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// Center is the fixed hub ID used by Star.
	Center = "Center"
)

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(Center); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, Center, err)
		}
		if err := addVertices(g, cfg, methodStar, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodStar, Center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
