// Package circuit models the logical gate sequence that qmap routes.
//
// An Operation is a tagged value: Kind Single acts on Qubits[0] only, Kind
// Two acts on the ordered pair Qubits[0], Qubits[1] (control, target for
// CNOT). Program order is the slice order; two operations are ordered
// relative to each other only when they share a qubit.
//
// Parse reads the line-oriented text form:
//
//	# Bell pair, then a long-range CNOT
//	H q0
//	CNOT q0, q1
//	cx q[0], q[2];
//
// Gate names are case-insensitive. CX is normalized to CNOT. Errors carry
// the offending line number and wrap one of ErrSyntax, ErrUnknownGate,
// ErrArity or ErrSameQubit.
package circuit
