// Package emit accumulates the rewritten program produced by a routing run.
//
// The Emitter appends steps in the exact order the router retires
// operations or applies swaps, and snapshots the layout after each swap.
// The resulting Result is read-only and is what exporters (package qasm)
// and reports consume.
//
// WriteIR renders the result in the qmap text dialect:
//
//	qmap.current_layout {q0->P0, q1->P1, q2->P2}
//	H %P0
//	qmap.insert_swap %P0, %P1 {cost=0.08}
//	qmap.current_layout {q0->P1, q1->P0, q2->P2}
//	qmap.two_qubit @CNOT(%P1, %P2)
package emit
