// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_complete.go - Complete(n): all-to-all coupling (trapped-ion style).
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

const (
	methodComplete   = "Complete"
	minCompleteSites = 1
)

// Complete returns a Constructor that couples every pair of n sites.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCompleteSites {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSites, ErrTooFewSites)
		}
		d.Grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := topology.Site(i), topology.Site(j)
				if err := d.AddEdge(u, v, cfg.fidelity(u, v)); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}
		return nil
	}
}
