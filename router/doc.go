// Package router maps a logical program onto a coupling topology by
// inserting SWAPs.
//
// Route drives a three-state machine:
//
//	Scanning  retire every ready single-qubit op and every ready two-qubit
//	          op whose operands sit on adjacent sites; repeat until a pass
//	          retires nothing. Empty program → Done, otherwise → Blocked.
//	Blocked   enumerate the edges touching the operands of blocked ops,
//	          score them with cost.Evaluator, apply the cheapest swap,
//	          → Scanning.
//	Done      the rewritten program is complete.
//
// The greedy choice can circle on some inputs. After MaxStall consecutive
// swaps without a retirement the router moves the oldest blocked operation
// one hop along a shortest path per swap until it retires; these swaps are
// marked Forced. This bounds the number of swaps for every input.
//
// A run is single-threaded and owns its mapping, front layer and emitter.
// The topology is only read, so one *topology.Graph may serve any number
// of concurrent runs.
//
// Observers receive every transition, retirement and swap; they never
// influence the routing decisions. Logging goes through zap and metrics
// through a metrics.Collector, both optional.
package router
