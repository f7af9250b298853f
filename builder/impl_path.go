// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_path.go - Path(n): the linear chain P0-P1-…-P(n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewSites).
//   - Emits edges (i-1,i) for i=1..n-1 in increasing order.
//   - Fidelity per edge from cfg.fidelityFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

const (
	methodPath   = "Path"
	minPathSites = 2
)

// Path returns a Constructor that builds a linear chain of n sites.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minPathSites {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathSites, ErrTooFewSites)
		}
		d.Grow(n)
		for i := 1; i < n; i++ {
			u, v := topology.Site(i-1), topology.Site(i)
			if err := d.AddEdge(u, v, cfg.fidelity(u, v)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}
		return nil
	}
}
