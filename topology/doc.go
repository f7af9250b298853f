// SPDX-License-Identifier: MIT
//
// Package topology defines the immutable coupling graph of a quantum
// processor: physical qubit sites joined by undirected edges, each edge
// carrying a fidelity in (0,1].
//
// A Graph is validated and frozen by New:
//
//   - sites are the integers 0..N-1 (printed P0, P1, ...);
//   - no self-loops, no parallel edges;
//   - every fidelity lies in (0,1];
//   - the graph is connected, otherwise ErrDisconnectedTopology.
//
// During construction New runs one breadth-first search per site (package
// bfs) and stores the all-pairs hop-distance table, trading O(V²) memory for
// O(1) Distance queries in the router's hot loop.
//
// Quick ASCII example (the 2×2 grid):
//
//	P0───P1
//	│     │
//	P2───P3
//
// Errors:
//
//	ErrSiteNotFound         - site index out of range.
//	ErrLoopNotAllowed       - edge from a site to itself.
//	ErrMultiEdgeNotAllowed  - second edge between the same pair.
//	ErrBadFidelity          - fidelity outside (0,1].
//	ErrEmptyTopology        - zero sites.
//	ErrDisconnectedTopology - some site unreachable from site 0.
//	ErrNotAdjacent          - Fidelity queried for a non-edge.
//
// Concurrency: a Graph is never mutated after New returns, so it can be
// shared across goroutines without locking.
package topology
