// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and BuildTopology never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qmap/topology"
)

// BuilderOption customizes topology construction by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic fidelity draws.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithFidelityFn overrides the per-edge fidelity generator. Panics on nil.
func WithFidelityFn(fn FidelityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFidelityFn(nil)")
	}
	return func(c *builderConfig) {
		c.fidelityFn = fn
		c.needsRand = false
	}
}

// WithConstantFidelity assigns f to every staged edge.
func WithConstantFidelity(f float64) BuilderOption {
	return WithFidelityFn(ConstantFidelity(f))
}

// WithUniformFidelity draws each edge fidelity from U[lo,hi]. Requires
// WithSeed or WithRand, otherwise BuildTopology returns ErrNeedRandSource.
func WithUniformFidelity(lo, hi float64) BuilderOption {
	fn := UniformFidelity(lo, hi)
	return func(c *builderConfig) {
		c.fidelityFn = fn
		c.needsRand = true
	}
}

// WithEdgeFidelity pins the fidelity of edge (u,v) after all constructors
// ran. Panics if f is outside (0,1] or u == v.
func WithEdgeFidelity(u, v topology.Site, f float64) BuilderOption {
	if !(f > 0 && f <= 1) {
		panic(fmt.Sprintf("builder: WithEdgeFidelity(%s,%s,%v) outside (0,1]", u, v, f))
	}
	if u == v {
		panic(fmt.Sprintf("builder: WithEdgeFidelity(%s,%s) is a loop", u, v))
	}
	return func(c *builderConfig) {
		c.overrides = append(c.overrides, edgeOverride{u: u, v: v, fidelity: f})
	}
}

// WithName sets the topology name passed to topology.WithName.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) { c.name = name }
}
