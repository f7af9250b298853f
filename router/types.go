package router

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/emit"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/topology"
)

// Sentinel errors returned by Route.
var (
	// ErrGraphNil indicates a nil topology.
	ErrGraphNil = errors.New("router: topology is nil")

	// ErrTooManyQubits indicates a program using more qubits than the
	// topology has sites.
	ErrTooManyQubits = errors.New("router: program needs more qubits than sites")

	// ErrMappingSize indicates an initial mapping whose size differs from
	// the number of sites.
	ErrMappingSize = errors.New("router: initial mapping size mismatch")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("router: invalid option supplied")

	// ErrRoutingDeadlock indicates a blocked front layer with no candidate
	// swap. Route returns it wrapped in a *DeadlockError.
	ErrRoutingDeadlock = errors.New("router: no swap candidate")
)

// DeadlockError reports where routing got stuck.
type DeadlockError struct {
	// Index is the position of Op in the input program.
	Index  int
	Op     circuit.Operation
	Layout mapping.Layout
}

func (e *DeadlockError) Error() string {
	return fmt.Sprintf("%v: op %d (%s) under %s", ErrRoutingDeadlock, e.Index, e.Op, e.Layout)
}

// Unwrap lets errors.Is match ErrRoutingDeadlock.
func (e *DeadlockError) Unwrap() error { return ErrRoutingDeadlock }

// State is a phase of the routing loop.
type State uint8

const (
	Scanning State = iota
	Blocked
	Done
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "SCANNING"
	case Blocked:
		return "BLOCKED"
	case Done:
		return "DONE"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Observer receives routing events as they happen.
type Observer interface {
	OnState(from, to State)
	OnRetire(index int, op circuit.Operation, sites [2]topology.Site)
	OnSwap(rec emit.SwapRecord)
}

// Hooks adapts plain functions to Observer; nil fields are skipped.
type Hooks struct {
	State  func(from, to State)
	Retire func(index int, op circuit.Operation, sites [2]topology.Site)
	Swap   func(rec emit.SwapRecord)
}

func (h Hooks) OnState(from, to State) {
	if h.State != nil {
		h.State(from, to)
	}
}

func (h Hooks) OnRetire(index int, op circuit.Operation, sites [2]topology.Site) {
	if h.Retire != nil {
		h.Retire(index, op, sites)
	}
}

func (h Hooks) OnSwap(rec emit.SwapRecord) {
	if h.Swap != nil {
		h.Swap(rec)
	}
}
