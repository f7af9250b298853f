// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qmap/bfs"
)

const methodNew = "New"

// New validates n sites and the given edges, then freezes them into a Graph.
//
// Implementation:
//   - Stage 1: Validate n, endpoints, loops, duplicates and fidelities.
//   - Stage 2: Build sorted adjacency lists and the fidelity index.
//   - Stage 3: Run BFS from every site to fill the distance table; any
//     unreachable site yields ErrDisconnectedTopology.
//
// Complexity: O(V·(V+E)) time, O(V²+E) space.
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrEmptyTopology)
	}

	g := &Graph{
		order:     n,
		edges:     make([]Edge, 0, len(edges)),
		adjacency: make([][]Site, n),
		fidelity:  make(map[pairKey]float64, len(edges)),
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, raw := range edges {
		e := raw.Normalized()
		if !g.valid(e.U) || !g.valid(e.V) {
			return nil, fmt.Errorf("%s: edge %s with %d sites: %w", methodNew, e, n, ErrSiteNotFound)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%s: edge %s: %w", methodNew, e, ErrLoopNotAllowed)
		}
		if !(e.Fidelity > 0 && e.Fidelity <= 1) {
			return nil, fmt.Errorf("%s: edge %s: %w", methodNew, e, ErrBadFidelity)
		}
		k := keyOf(e.U, e.V)
		if _, dup := g.fidelity[k]; dup {
			return nil, fmt.Errorf("%s: edge %s: %w", methodNew, e, ErrMultiEdgeNotAllowed)
		}
		g.fidelity[k] = e.Fidelity
		g.edges = append(g.edges, e)
		g.adjacency[e.U] = append(g.adjacency[e.U], e.V)
		g.adjacency[e.V] = append(g.adjacency[e.V], e.U)
	}

	for _, nbrs := range g.adjacency {
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}
		return g.edges[i].V < g.edges[j].V
	})

	if err := g.computeDistances(); err != nil {
		return nil, err
	}

	return g, nil
}

// computeDistances fills the all-pairs table with one BFS per site, writing
// each depth straight into the row as the vertex is visited.
func (g *Graph) computeDistances() error {
	n := g.order
	g.dist = make([]int, n*n)
	for i := range g.dist {
		g.dist[i] = -1
	}
	view := adjacencyView{g: g}
	for s := 0; s < n; s++ {
		row := g.dist[s*n : (s+1)*n]
		_, err := bfs.BFS(view, s, bfs.WithOnVisit(func(id, depth int) error {
			row[id] = depth
			return nil
		}))
		if err != nil {
			return fmt.Errorf("%s: distances from %s: %w", methodNew, Site(s), err)
		}
		for t, d := range row {
			if d < 0 {
				return fmt.Errorf("%s: %s unreachable from %s: %w",
					methodNew, Site(t), Site(s), ErrDisconnectedTopology)
			}
			if d > g.diameter {
				g.diameter = d
			}
		}
	}
	return nil
}

// adjacencyView exposes the graph to package bfs as plain integers.
type adjacencyView struct{ g *Graph }

func (v adjacencyView) Order() int { return v.g.order }

func (v adjacencyView) NeighborIDs(id int) ([]int, error) {
	if !v.g.valid(Site(id)) {
		return nil, ErrSiteNotFound
	}
	nbrs := v.g.adjacency[id]
	out := make([]int, len(nbrs))
	for i, s := range nbrs {
		out[i] = int(s)
	}
	return out, nil
}

func (g *Graph) valid(s Site) bool { return s >= 0 && int(s) < g.order }
