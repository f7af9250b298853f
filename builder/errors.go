// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by editing sentinels.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewSites indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewSites = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic fidelity distribution was
// configured without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure while staging, such as
// a nil constructor or an edge whose endpoints coincide.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates that Named could not resolve a preset name.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// ErrUnknownEdge indicates that WithEdgeFidelity named a pair no constructor emitted.
var ErrUnknownEdge = errors.New("builder: fidelity override for missing edge")
