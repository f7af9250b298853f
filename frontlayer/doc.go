// Package frontlayer tracks which operations of a logical program are
// ready to execute.
//
// Dependencies are implicit: operation j depends on an earlier operation i
// exactly when they share a qubit. The Manager keeps, for every qubit, the
// ordered list of operations touching it and a cursor to the first one not
// yet retired. An operation is in the front layer when it sits under the
// cursor of every one of its qubits.
//
// Lookahead computes the next two-qubit operations that would become ready
// after the current front retires, by advancing copies of the cursors layer
// by layer. It never changes the Manager.
//
// Complexity: New O(ops); Front O(qubits log qubits); Retire O(1);
// Lookahead O(window·qubits log qubits) in the worst case.
package frontlayer
