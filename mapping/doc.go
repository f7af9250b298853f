// Package mapping holds the live logical-to-physical qubit assignment.
//
// A Mapping is a total bijection between logical qubits 0..n-1 and sites
// 0..n-1 of a topology with n sites. Logical qubits a circuit never touches
// sit on the remaining sites as idle placeholders, so every site always has
// exactly one occupant and a swap between any two sites is well defined.
//
// The forward (qubit → site) and inverse (site → qubit) tables are both
// updated inside ApplySwap before it returns; no caller can observe one
// without the other. A Mapping is not safe for concurrent mutation; a
// routing run owns its Mapping.
package mapping
