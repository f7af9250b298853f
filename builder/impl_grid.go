// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Site numbering is row-major: (r,c) ↦ r*cols + c. The 2×2 grid is
//       P0─P1
//       │  │
//       P2─P3
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewSites).
//   • For each (r,c) emits Right then Bottom when present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

const (
	methodGrid   = "Grid"
	minGridDim   = 1
	minGridSites = 2
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < minGridSites {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewSites)
		}
		d.Grow(rows * cols)
		site := func(r, c int) topology.Site { return topology.Site(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := site(r, c)
				if c+1 < cols {
					v := site(r, c+1)
					if err := d.AddEdge(u, v, cfg.fidelity(u, v)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					v := site(r+1, c)
					if err := d.AddEdge(u, v, cfg.fidelity(u, v)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}
		return nil
	}
}
