// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil                     (pure unless seeded)
//   • fidelityFn  = ConstantFidelity(1.0)   (ideal links)
//   • overrides   = none
//   • name        = ""                      (BuildNamed fills it)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/qmap/topology"
)

// DefaultFidelity is the link fidelity used when no distribution is configured.
const DefaultFidelity = 1.0

// edgeOverride pins the fidelity of one coupling after staging.
type edgeOverride struct {
	u, v     topology.Site
	fidelity float64
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng        *rand.Rand
	fidelityFn FidelityFn
	needsRand  bool
	overrides  []edgeOverride
	name       string
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		fidelityFn: ConstantFidelity(DefaultFidelity),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// fidelity draws the fidelity for edge (u,v) from the configured distribution.
func (c builderConfig) fidelity(u, v topology.Site) float64 {
	return c.fidelityFn(c.rng, u, v)
}
