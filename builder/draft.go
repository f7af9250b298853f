package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

// Draft is the mutable staging area constructors write into. It only
// grows; BuildTopology turns it into an immutable topology.Graph.
type Draft struct {
	order int
	edges []topology.Edge
	index map[[2]topology.Site]int
}

func newDraft() *Draft {
	return &Draft{index: make(map[[2]topology.Site]int)}
}

// Order returns the number of staged sites.
func (d *Draft) Order() int { return d.order }

// Grow ensures the draft has at least n sites.
func (d *Draft) Grow(n int) {
	if n > d.order {
		d.order = n
	}
}

// AddEdge stages the coupling (u,v) with fidelity f, growing the site count
// as needed. A pair that is already staged keeps its first fidelity.
func (d *Draft) AddEdge(u, v topology.Site, f float64) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, topology.ErrSiteNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, ErrConstructFailed)
	}
	e := topology.Edge{U: u, V: v, Fidelity: f}.Normalized()
	key := [2]topology.Site{e.U, e.V}
	if _, ok := d.index[key]; ok {
		return nil
	}
	d.Grow(int(e.V) + 1)
	d.index[key] = len(d.edges)
	d.edges = append(d.edges, e)
	return nil
}

// HasEdge reports whether (u,v) is staged.
func (d *Draft) HasEdge(u, v topology.Site) bool {
	e := topology.Edge{U: u, V: v}.Normalized()
	_, ok := d.index[[2]topology.Site{e.U, e.V}]
	return ok
}

// setFidelity overwrites the fidelity of a staged edge.
func (d *Draft) setFidelity(u, v topology.Site, f float64) bool {
	e := topology.Edge{U: u, V: v}.Normalized()
	i, ok := d.index[[2]topology.Site{e.U, e.V}]
	if !ok {
		return false
	}
	d.edges[i].Fidelity = f
	return true
}
