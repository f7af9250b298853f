// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_star.go - Star(n): hub P0 coupled to leaves P1..P(n-1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

const (
	methodStar   = "Star"
	minStarSites = 2
	starHub      = topology.Site(0)
)

// Star returns a Constructor that builds a star with hub P0.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minStarSites {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarSites, ErrTooFewSites)
		}
		d.Grow(n)
		for i := 1; i < n; i++ {
			leaf := topology.Site(i)
			if err := d.AddEdge(starHub, leaf, cfg.fidelity(starHub, leaf)); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}
		return nil
	}
}
