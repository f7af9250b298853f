// Package builder provides functional-options constructors for physical
// qubit topologies. Constructors stage sites and edges into a Draft; the
// single orchestrator BuildTopology resolves options, runs constructors in
// order, applies per-edge fidelity overrides, and freezes the result with
// topology.New (which enforces connectivity).
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:        a function that mutates builderConfig before use.
//     – builderConfig:        holds RNG, fidelity function, overrides, name.
//   - Topology constructors (Constructor implementations):
//     – Path(n):              linear chain P0-P1-…-P(n-1).
//     – Cycle(n):             ring, Path plus the closing edge.
//     – Grid(rows, cols):     4-neighborhood grid, row-major site numbering.
//     – Star(n):              hub P0 with n-1 leaves.
//     – Complete(n):          every pair coupled.
//     – HeavyHex():           the 14-site heavy-hex patch.
//   - Fidelity distributions (FidelityFn implementations):
//     – ConstantFidelity(f):  fixed value.
//     – UniformFidelity(lo,hi): uniform draws, requires WithSeed/WithRand.
//   - Named presets: Named("heavyhex"), Named("grid:3x4"), … and BuildNamed.
//
// Guarantees:
//
//   - Idempotent staging: a constructor that emits an edge already present
//     keeps the first fidelity; composing Path(4) with Cycle(4) yields a ring.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping package sentinels.
//   - Determinism: same inputs/options/seed ⇒ identical topology.
package builder
