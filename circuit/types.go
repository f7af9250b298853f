package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Parse and the Operation constructors.
var (
	// ErrSyntax indicates a malformed line or qubit token.
	ErrSyntax = errors.New("circuit: syntax error")

	// ErrUnknownGate indicates a gate name outside the supported set.
	ErrUnknownGate = errors.New("circuit: unknown gate")

	// ErrArity indicates a gate applied to the wrong number of qubits.
	ErrArity = errors.New("circuit: wrong number of operands")

	// ErrSameQubit indicates a two-qubit gate whose operands coincide.
	ErrSameQubit = errors.New("circuit: two-qubit gate on a single qubit")
)

// Qubit is a logical qubit identifier.
type Qubit int

// String renders the qubit as "q<n>".
func (q Qubit) String() string { return fmt.Sprintf("q%d", int(q)) }

// Kind tags an Operation.
type Kind uint8

const (
	// Single is a gate acting on one qubit.
	Single Kind = iota
	// Two is a gate acting on an ordered pair of distinct qubits.
	Two
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Two:
		return "two"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Operation is one gate of the logical program.
type Operation struct {
	Kind   Kind
	Gate   string
	Qubits [2]Qubit
}

// NewSingle returns a single-qubit operation.
func NewSingle(gate string, q Qubit) Operation {
	return Operation{Kind: Single, Gate: gate, Qubits: [2]Qubit{q, q}}
}

// NewTwo returns a two-qubit operation on (a, b). It fails with
// ErrSameQubit when a == b.
func NewTwo(gate string, a, b Qubit) (Operation, error) {
	if a == b {
		return Operation{}, fmt.Errorf("NewTwo(%s %s,%s): %w", gate, a, b, ErrSameQubit)
	}
	return Operation{Kind: Two, Gate: gate, Qubits: [2]Qubit{a, b}}, nil
}

// MustTwo is NewTwo for literals in tests and examples. Panics on error.
func MustTwo(gate string, a, b Qubit) Operation {
	op, err := NewTwo(gate, a, b)
	if err != nil {
		panic(err)
	}
	return op
}

// Operands returns the qubits the operation touches: one for Single, two
// for Two.
func (o Operation) Operands() []Qubit {
	if o.Kind == Two {
		return []Qubit{o.Qubits[0], o.Qubits[1]}
	}
	return []Qubit{o.Qubits[0]}
}

// Touches reports whether q is an operand of o.
func (o Operation) Touches(q Qubit) bool {
	if o.Qubits[0] == q {
		return true
	}
	return o.Kind == Two && o.Qubits[1] == q
}

// String renders "H q0" or "CNOT q0, q1", the form Parse accepts.
func (o Operation) String() string {
	if o.Kind == Two {
		return fmt.Sprintf("%s %s, %s", o.Gate, o.Qubits[0], o.Qubits[1])
	}
	return fmt.Sprintf("%s %s", o.Gate, o.Qubits[0])
}

// NumQubits returns 1 + the highest qubit index used by ops, or 0 for an
// empty program.
func NumQubits(ops []Operation) int {
	n := 0
	for _, op := range ops {
		for _, q := range op.Operands() {
			if int(q)+1 > n {
				n = int(q) + 1
			}
		}
	}
	return n
}

// CountTwo returns how many operations in ops are two-qubit.
func CountTwo(ops []Operation) int {
	n := 0
	for _, op := range ops {
		if op.Kind == Two {
			n++
		}
	}
	return n
}
