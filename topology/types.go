// SPDX-License-Identifier: MIT

package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology construction and queries.
var (
	// ErrSiteNotFound indicates an operation referenced a site outside 0..N-1.
	ErrSiteNotFound = errors.New("topology: site not found")

	// ErrLoopNotAllowed indicates an edge from a site to itself.
	ErrLoopNotAllowed = errors.New("topology: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same sites.
	ErrMultiEdgeNotAllowed = errors.New("topology: multi-edges not allowed")

	// ErrBadFidelity indicates a fidelity outside (0,1].
	ErrBadFidelity = errors.New("topology: fidelity out of range (0,1]")

	// ErrEmptyTopology indicates a topology with no sites.
	ErrEmptyTopology = errors.New("topology: no sites")

	// ErrDisconnectedTopology indicates that some site cannot be reached from
	// another one; routing is undefined on such a graph.
	ErrDisconnectedTopology = errors.New("topology: graph is disconnected")

	// ErrNotAdjacent indicates a fidelity query on two sites without a direct edge.
	ErrNotAdjacent = errors.New("topology: sites are not adjacent")
)

// Site identifies a physical qubit location.
type Site int

// String renders the site as "P<n>".
func (s Site) String() string { return fmt.Sprintf("P%d", int(s)) }

// Edge is an undirected coupling between two sites.
//
// New normalizes every edge so that U < V.
type Edge struct {
	// U is the lower-indexed endpoint.
	U Site

	// V is the higher-indexed endpoint.
	V Site

	// Fidelity is the two-qubit gate fidelity of the link, in (0,1].
	// Higher is better.
	Fidelity float64
}

// Normalized returns e with its endpoints ordered so that U < V.
func (e Edge) Normalized() Edge {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}
	return e
}

// String renders the edge as "P0-P1(0.99)".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s(%.2f)", e.U, e.V, e.Fidelity)
}

// pairKey packs an unordered site pair into a map key.
type pairKey struct{ lo, hi Site }

func keyOf(a, b Site) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Option configures a Graph before validation.
type Option func(g *Graph)

// WithName attaches a human-readable name ("heavyhex", "grid:2x2") used in
// String, logs and reports.
func WithName(name string) Option {
	return func(g *Graph) { g.name = name }
}

// Graph is the immutable coupling graph.
//
// adjacency[s] lists the neighbors of s in ascending order; fidelity holds
// one entry per edge keyed by the ordered pair; dist is the row-major
// all-pairs hop-distance table.
type Graph struct {
	name      string
	order     int
	edges     []Edge
	adjacency [][]Site
	fidelity  map[pairKey]float64
	dist      []int
	diameter  int
}
