// Package cost scores candidate SWAPs for the router.
//
// A candidate is an edge of the topology. Its score is the sum of three
// terms, lower is better:
//
//	primary   = Σ dist(a', b')                 over blocked front two-qubit ops
//	secondary = Σ Decay^(pos+1) · dist(a', b') over lookahead ops, pos = 0,1,…
//	penalty   = FidelityPenalty · (1 − f(edge))
//
// where a', b' are the operand sites after the candidate swap is applied.
// Equal totals (within Epsilon) are broken by the lower site pair, so the
// choice is reproducible.
package cost
