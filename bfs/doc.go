// Package bfs provides breadth-first search over an integer-indexed
// adjacency, returning unweighted shortest-path distances, parent links,
// and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook, called in visit order; may abort with an error.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	The topology package runs one BFS per physical site, collecting depths
//	through OnVisit, to build the all-pairs hop-distance table the router
//	queries in its hot loop. Path queries bound the search with MaxDepth
//	set to the known distance and may prune low-fidelity couplings with
//	FilterNeighbor; PathTo reconstructs the route.
//
// Determinism
//
//	Neighbors are enqueued in the order Adjacency.NeighborIDs returns them,
//	so the visit sequence is reproducible for a fixed adjacency.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(adj, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors, or OnVisit errors
//	}
//	path, err := res.PathTo(5)
package bfs
