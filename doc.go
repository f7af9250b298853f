// Package qmap is a fidelity-aware qubit router: it rewrites a logical
// quantum circuit so that every two-qubit gate acts on physically coupled
// qubits, inserting SWAPs chosen by a greedy, look-ahead cost function.
//
// What is in the box
//
//	• Topologies: immutable coupling graphs with all-pairs hop distances and
//	  per-edge fidelities; named presets (linear, ring, grid, star,
//	  complete, 14-site heavy-hex)
//	• Routing: SCANNING / BLOCKED / DONE state machine over a front layer,
//	  SWAP scoring = front distance + decayed look-ahead + fidelity penalty
//	• Output: rewritten program with SWAP records and layout snapshots,
//	  qmap IR text and OpenQASM 3.0
//	• Tooling: circuit text parser, TOML config, zap logging, Prometheus
//	  metrics, concurrent multi-topology benchmark, the qmap CLI
//
// Under the hood, everything is organized in subpackages:
//
//	bfs/        — breadth-first search with hooks, used for distances and paths
//	topology/   — Graph, Site, Edge; distance, neighbors, fidelity
//	builder/    — topology constructors and fidelity functions
//	circuit/    — Qubit, Operation, text parser
//	mapping/    — logical ↔ physical bijection with atomic swaps
//	frontlayer/ — per-qubit cursors, front layer, look-ahead window
//	cost/       — candidate enumeration and scoring
//	emit/       — routed program, SWAP records, IR dump
//	router/     — Route and the routing state machine
//	qasm/       — OpenQASM 3.0 exporter
//	metrics/    — Prometheus collectors
//	config/     — TOML configuration
//	bench/      — comparative runs across topologies
//	cmd/qmap/   — command line
//
// Quick start:
//
//	g, _ := builder.BuildNamed("grid2x2")
//	ops, _ := circuit.ParseString("CNOT q0, q3\nCNOT q1, q2\n")
//	res, _ := router.Route(g, ops)
//	_ = qasm.Export(os.Stdout, res, g.Order())
package qmap
