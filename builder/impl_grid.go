// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are "r,c" (cfg.idFn is not used), added in row-major order.
//   - For each cell in row-major order: right edge first, then down edge.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mstkit/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := cellID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, cellID(r, c), cellID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, cellID(r, c), cellID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// cellID formats a grid coordinate as "r,c".
func cellID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
