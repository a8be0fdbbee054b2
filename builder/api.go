// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "Build: %w" and returned immediately; no partial graph is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func Build(bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Kind names a topology selectable by ByName.
type Kind string

// Topology kinds understood by ByName.
const (
	KindPath     Kind = "path"
	KindCycle    Kind = "cycle"
	KindStar     Kind = "star"
	KindComplete Kind = "complete"
	KindGrid     Kind = "grid"
	KindRandom   Kind = "random"
)

// Kinds lists every kind accepted by ByName, in documentation order.
func Kinds() []Kind {
	return []Kind{KindPath, KindCycle, KindStar, KindComplete, KindGrid, KindRandom}
}

// ByName maps a topology name and size to a Constructor.
//
//	grid   — n×n lattice.
//	random — RandomSparse(n, p).
//	others — n vertices; p is ignored.
func ByName(kind Kind, n int, p float64) (Constructor, error) {
	switch kind {
	case KindPath:
		return Path(n), nil
	case KindCycle:
		return Cycle(n), nil
	case KindStar:
		return Star(n), nil
	case KindComplete:
		return Complete(n), nil
	case KindGrid:
		return Grid(n, n), nil
	case KindRandom:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// addVertices inserts idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge draws a weight and connects u—v, wrapping failures with method context.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
