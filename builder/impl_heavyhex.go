// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_heavyhex.go - HeavyHex(): a 14-site patch of the heavy-hex lattice
// used by Falcon-class processors.
//
//	      P0 -- P1 -- P2
//	      |           |
//	P3 -- P4 -- P5 -- P6 -- P7
//	      |           |
//	      P8 -- P9 -- P10
//	            |
//	            P11
//	            |
//	            P12 -- P13

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

const (
	methodHeavyHex = "HeavyHex"
	heavyHexSites  = 14
)

// heavyHexEdges lists the couplings of the patch in emission order.
var heavyHexEdges = [][2]topology.Site{
	{0, 1}, {1, 2},
	{0, 4}, {2, 6},
	{3, 4}, {4, 5}, {5, 6}, {6, 7},
	{4, 8}, {6, 10},
	{8, 9}, {9, 10},
	{9, 11},
	{11, 12},
	{12, 13},
}

// HeavyHex returns a Constructor for the fixed 14-site heavy-hex patch.
func HeavyHex() Constructor {
	return func(d *Draft, cfg builderConfig) error {
		d.Grow(heavyHexSites)
		for _, p := range heavyHexEdges {
			if err := d.AddEdge(p[0], p[1], cfg.fidelity(p[0], p[1])); err != nil {
				return fmt.Errorf("%s: %w", methodHeavyHex, err)
			}
		}
		return nil
	}
}
