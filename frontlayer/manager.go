package frontlayer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/qmap/circuit"
)

// ErrNotEligible indicates Retire was called on an operation outside the
// front layer (already retired, blocked by a predecessor, or out of range).
var ErrNotEligible = errors.New("frontlayer: operation not eligible")

// Manager exposes the eligible set of a program.
type Manager struct {
	ops       []circuit.Operation
	perQubit  [][]int // per qubit: indices of ops touching it, program order
	cursor    []int   // per qubit: position in perQubit of the first unretired op
	retired   []bool
	remaining int
}

// New indexes ops. The slice is not copied and must not be changed while
// the Manager is in use.
func New(ops []circuit.Operation) *Manager {
	nq := circuit.NumQubits(ops)
	m := &Manager{
		ops:       ops,
		perQubit:  make([][]int, nq),
		cursor:    make([]int, nq),
		retired:   make([]bool, len(ops)),
		remaining: len(ops),
	}
	for i, op := range ops {
		for _, q := range op.Operands() {
			m.perQubit[q] = append(m.perQubit[q], i)
		}
	}
	return m
}

// Op returns operation i.
func (m *Manager) Op(i int) circuit.Operation { return m.ops[i] }

// Len returns the number of operations in the program.
func (m *Manager) Len() int { return len(m.ops) }

// Remaining returns the number of operations not yet retired.
func (m *Manager) Remaining() int { return m.remaining }

// Done reports whether every operation has been retired.
func (m *Manager) Done() bool { return m.remaining == 0 }

// Front returns the indices of the ready operations in ascending order.
func (m *Manager) Front() []int {
	return m.frontOf(m.cursor)
}

// Retire marks operation i executed and advances the cursors of its qubits.
func (m *Manager) Retire(i int) error {
	if i < 0 || i >= len(m.ops) || m.retired[i] || !m.ready(i, m.cursor) {
		return fmt.Errorf("Retire(%d): %w", i, ErrNotEligible)
	}
	for _, q := range m.ops[i].Operands() {
		m.cursor[q]++
	}
	m.retired[i] = true
	m.remaining--
	return nil
}

// Lookahead returns up to window indices of two-qubit operations that
// become ready once the current front retires, nearest layer first and
// ascending inside a layer. Operations of the current front are excluded.
func (m *Manager) Lookahead(window int) []int {
	if window <= 0 {
		return nil
	}
	cur := make([]int, len(m.cursor))
	copy(cur, m.cursor)

	layer := m.frontOf(cur)
	out := make([]int, 0, window)
	for first := true; len(layer) > 0; first = false {
		for _, i := range layer {
			if !first && m.ops[i].Kind == circuit.Two {
				out = append(out, i)
				if len(out) == window {
					return out
				}
			}
			for _, q := range m.ops[i].Operands() {
				cur[q]++
			}
		}
		layer = m.frontOf(cur)
	}
	return out
}

// ready reports whether op i is under the cursor of each of its qubits.
func (m *Manager) ready(i int, cur []int) bool {
	for _, q := range m.ops[i].Operands() {
		list := m.perQubit[q]
		if cur[q] >= len(list) || list[cur[q]] != i {
			return false
		}
	}
	return true
}

// frontOf computes the front layer for an arbitrary cursor vector.
func (m *Manager) frontOf(cur []int) []int {
	var out []int
	for q, list := range m.perQubit {
		if cur[q] >= len(list) {
			continue
		}
		i := list[cur[q]]
		op := m.ops[i]
		// A two-qubit op is reported once, from its lower-numbered operand.
		if op.Kind == circuit.Two {
			lo := op.Qubits[0]
			if op.Qubits[1] < lo {
				lo = op.Qubits[1]
			}
			if circuit.Qubit(q) != lo {
				continue
			}
		}
		if m.ready(i, cur) {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
