// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildTopology(bopts, cons...). Creates a Draft,
//     resolves cfg, runs cons in order, applies overrides, freezes.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical topologies.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

// Constructor stages sites and edges into d using the resolved config.
// Constructors validate parameters early, return sentinel errors, and
// never panic.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildTopology resolves bopts, applies every constructor in order, pins
// fidelity overrides, and returns the frozen topology. Errors are wrapped
// with "BuildTopology: %w"; topology.ErrDisconnectedTopology surfaces here
// when the constructors leave the draft in several components.
func BuildTopology(bopts []BuilderOption, cons ...Constructor) (*topology.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.needsRand && cfg.rng == nil {
		return nil, fmt.Errorf("BuildTopology: %w", ErrNeedRandSource)
	}

	d := newDraft()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTopology: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildTopology: %w", err)
		}
	}

	for _, o := range cfg.overrides {
		if !d.setFidelity(o.u, o.v, o.fidelity) {
			return nil, fmt.Errorf("BuildTopology: %s-%s: %w", o.u, o.v, ErrUnknownEdge)
		}
	}

	g, err := topology.New(d.order, d.edges, topology.WithName(cfg.name))
	if err != nil {
		return nil, fmt.Errorf("BuildTopology: %w", err)
	}
	return g, nil
}
