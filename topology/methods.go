// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qmap/bfs"
)

// Name returns the name given with WithName, or "" if none.
func (g *Graph) Name() string { return g.name }

// Order returns the number of sites.
func (g *Graph) Order() int { return g.order }

// Diameter returns the largest hop distance between any two sites.
func (g *Graph) Diameter() int { return g.diameter }

// Sites returns every site in ascending order.
func (g *Graph) Sites() []Site {
	out := make([]Site, g.order)
	for i := range out {
		out[i] = Site(i)
	}
	return out
}

// Edges returns a copy of the edge list, sorted by (U, V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Distance returns the hop count of a shortest path between a and b.
// Complexity: O(1).
func (g *Graph) Distance(a, b Site) (int, error) {
	if !g.valid(a) || !g.valid(b) {
		return 0, fmt.Errorf("Distance(%s,%s): %w", a, b, ErrSiteNotFound)
	}
	return g.dist[int(a)*g.order+int(b)], nil
}

// Adjacent reports whether a and b share an edge.
func (g *Graph) Adjacent(a, b Site) bool {
	_, ok := g.fidelity[keyOf(a, b)]
	return ok
}

// Neighbors returns the sites adjacent to s in ascending order.
// The returned slice is a copy.
func (g *Graph) Neighbors(s Site) ([]Site, error) {
	if !g.valid(s) {
		return nil, fmt.Errorf("Neighbors(%s): %w", s, ErrSiteNotFound)
	}
	out := make([]Site, len(g.adjacency[s]))
	copy(out, g.adjacency[s])
	return out, nil
}

// Fidelity returns the fidelity of the edge between a and b.
func (g *Graph) Fidelity(a, b Site) (float64, error) {
	if !g.valid(a) || !g.valid(b) {
		return 0, fmt.Errorf("Fidelity(%s,%s): %w", a, b, ErrSiteNotFound)
	}
	f, ok := g.fidelity[keyOf(a, b)]
	if !ok {
		return 0, fmt.Errorf("Fidelity(%s,%s): %w", a, b, ErrNotAdjacent)
	}
	return f, nil
}

// ShortestPath returns one fewest-hop path from a to b, both endpoints
// included. Ties are resolved toward lower-numbered sites.
func (g *Graph) ShortestPath(a, b Site) ([]Site, error) {
	if !g.valid(a) || !g.valid(b) {
		return nil, fmt.Errorf("ShortestPath(%s,%s): %w", a, b, ErrSiteNotFound)
	}
	path, err := g.pathWithin(a, b)
	if err != nil {
		return nil, fmt.Errorf("ShortestPath(%s,%s): %w", a, b, err)
	}
	return path, nil
}

// ReliablePath returns a fewest-hop path from a to b that only crosses
// couplings with fidelity ≥ floor. When every shortest path needs a weaker
// link it returns ShortestPath's answer instead, so the result is always a
// shortest path.
func (g *Graph) ReliablePath(a, b Site, floor float64) ([]Site, error) {
	if !g.valid(a) || !g.valid(b) {
		return nil, fmt.Errorf("ReliablePath(%s,%s): %w", a, b, ErrSiteNotFound)
	}
	strong := bfs.WithFilterNeighbor(func(u, v int) bool {
		return g.fidelity[keyOf(Site(u), Site(v))] >= floor
	})
	if path, err := g.pathWithin(a, b, strong); err == nil {
		return path, nil
	}
	path, err := g.pathWithin(a, b)
	if err != nil {
		return nil, fmt.Errorf("ReliablePath(%s,%s): %w", a, b, err)
	}
	return path, nil
}

// pathWithin runs a BFS from a bounded by the hop distance to b, so any
// path it finds is a shortest one.
func (g *Graph) pathWithin(a, b Site, opts ...bfs.Option) ([]Site, error) {
	limit := bfs.WithMaxDepth(g.dist[int(a)*g.order+int(b)])
	res, err := bfs.BFS(adjacencyView{g: g}, int(a), append([]bfs.Option{limit}, opts...)...)
	if err != nil {
		return nil, err
	}
	ids, err := res.PathTo(int(b))
	if err != nil {
		return nil, ErrDisconnectedTopology
	}
	path := make([]Site, len(ids))
	for i, id := range ids {
		path[i] = Site(id)
	}
	return path, nil
}

// String renders the graph as "name: P0-P1(1.00) P1-P2(1.00)".
func (g *Graph) String() string {
	var sb strings.Builder
	if g.name != "" {
		sb.WriteString(g.name)
	} else {
		fmt.Fprintf(&sb, "topology[%d]", g.order)
	}
	sb.WriteString(":")
	for _, e := range g.edges {
		sb.WriteString(" ")
		sb.WriteString(e.String())
	}
	return sb.String()
}
