package emit

import (
	"fmt"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/cost"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/topology"
)

// StepKind tags a Step.
type StepKind uint8

const (
	// StepSingle is a single-qubit operation passed through unchanged.
	StepSingle StepKind = iota
	// StepTwo is a two-qubit operation rewritten to physical sites.
	StepTwo
	// StepSwap is an inserted SWAP.
	StepSwap
)

func (k StepKind) String() string {
	switch k {
	case StepSingle:
		return "single"
	case StepTwo:
		return "two"
	case StepSwap:
		return "swap"
	}
	return fmt.Sprintf("StepKind(%d)", uint8(k))
}

// SwapRecord describes one inserted SWAP.
type SwapRecord struct {
	// A and B are the exchanged sites, A < B.
	A, B topology.Site

	// Fidelity of the edge (A, B).
	Fidelity float64

	// Score is the evaluator breakdown of the swap at selection time, for
	// forced swaps too.
	Score cost.Breakdown

	// Forced marks swaps taken along a shortest path by the stall fallback
	// rather than chosen by score.
	Forced bool

	// Position is the index of the swap in Result.Steps.
	Position int
}

// Cost is the error contribution of the swap, 1 − fidelity.
func (r SwapRecord) Cost() float64 { return 1 - r.Fidelity }

func (r SwapRecord) String() string {
	return fmt.Sprintf("SWAP %s<->%s cost=%.2f", r.A, r.B, r.Cost())
}

// Step is one entry of the rewritten program.
type Step struct {
	Kind StepKind

	// Op is the original operation for StepSingle and StepTwo.
	Op circuit.Operation

	// Index is the position of Op in the input program, -1 for swaps.
	Index int

	// Sites holds the physical operands: Sites[0] for single-qubit steps,
	// both for two-qubit steps and swaps.
	Sites [2]topology.Site

	// Swap is set for StepSwap.
	Swap *SwapRecord
}

// Snapshot is the layout in force from output position At onward.
type Snapshot struct {
	At     int
	Layout mapping.Layout
}

// Result is the complete output of a routing run.
type Result struct {
	// Topology is the name of the graph the program was routed onto.
	Topology string

	// RunID identifies the run in logs and reports.
	RunID string

	Steps     []Step
	Snapshots []Snapshot
}
