package emit

import (
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/topology"
)

// Emitter builds a Result step by step. It has no effect on the topology
// or the input program.
type Emitter struct {
	res Result
}

// NewEmitter starts a result whose first snapshot is initial.
func NewEmitter(initial mapping.Layout) *Emitter {
	return &Emitter{res: Result{
		Snapshots: []Snapshot{{At: 0, Layout: initial}},
	}}
}

// Single appends input operation index, executed on site s.
func (e *Emitter) Single(index int, op circuit.Operation, s topology.Site) {
	e.res.Steps = append(e.res.Steps, Step{
		Kind:  StepSingle,
		Op:    op,
		Index: index,
		Sites: [2]topology.Site{s, s},
	})
}

// Two appends input operation index, executed on sites (a, b) in operand order.
func (e *Emitter) Two(index int, op circuit.Operation, a, b topology.Site) {
	e.res.Steps = append(e.res.Steps, Step{
		Kind:  StepTwo,
		Op:    op,
		Index: index,
		Sites: [2]topology.Site{a, b},
	})
}

// Swap appends rec, fills its Position and records after as the layout
// from the next step onward. It returns the stored record.
func (e *Emitter) Swap(rec SwapRecord, after mapping.Layout) SwapRecord {
	if rec.A > rec.B {
		rec.A, rec.B = rec.B, rec.A
	}
	rec.Position = len(e.res.Steps)
	stored := rec
	e.res.Steps = append(e.res.Steps, Step{
		Kind:  StepSwap,
		Index: -1,
		Sites: [2]topology.Site{rec.A, rec.B},
		Swap:  &stored,
	})
	e.res.Snapshots = append(e.res.Snapshots, Snapshot{At: rec.Position + 1, Layout: after})
	return rec
}

// Len returns the number of steps emitted so far.
func (e *Emitter) Len() int { return len(e.res.Steps) }

// Result returns the accumulated output. The Emitter must not be used
// afterwards.
func (e *Emitter) Result() *Result {
	r := e.res
	return &r
}
