// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_cycle.go - Cycle(n): ring of n sites.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

const (
	methodCycle   = "Cycle"
	minCycleSites = 3
)

// Cycle returns a Constructor that builds a ring: edges (i, i+1 mod n).
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCycleSites {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSites, ErrTooFewSites)
		}
		d.Grow(n)
		for i := 0; i < n; i++ {
			u, v := topology.Site(i), topology.Site((i+1)%n)
			if err := d.AddEdge(u, v, cfg.fidelity(u, v)); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}
		return nil
	}
}
