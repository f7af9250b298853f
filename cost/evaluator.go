package cost

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/topology"
)

// Epsilon is the tolerance under which two totals count as equal.
const Epsilon = 1e-9

// Candidate is a swap over the edge (A, B), A < B.
type Candidate struct {
	A, B topology.Site
}

func (c Candidate) String() string { return fmt.Sprintf("%s<->%s", c.A, c.B) }

// Breakdown is the itemized score of one candidate.
type Breakdown struct {
	Primary   float64
	Secondary float64
	Penalty   float64
	Total     float64
}

// Scored pairs a candidate with its score.
type Scored struct {
	Candidate
	Breakdown
}

// Less orders a before b: lower total first, then lower (A, B).
func Less(a, b Scored) bool {
	if d := a.Total - b.Total; math.Abs(d) > Epsilon {
		return d < 0
	}
	if a.A != b.A {
		return a.A < b.A
	}
	return a.B < b.B
}

// Evaluator scores candidates against a topology and a live mapping.
// It reads the mapping on every call and never mutates it.
type Evaluator struct {
	g   *topology.Graph
	m   *mapping.Mapping
	cfg Config
}

// NewEvaluator binds g and m. cfg must pass Validate.
func NewEvaluator(g *topology.Graph, m *mapping.Mapping, cfg Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w", err)
	}
	return &Evaluator{g: g, m: m, cfg: cfg}, nil
}

// Config returns the tunables in use.
func (e *Evaluator) Config() Config { return e.cfg }

// Score computes the breakdown for c. front holds the blocked operations
// and lookahead the upcoming ones; single-qubit operations in either are
// ignored. c must be an edge of the topology (topology.ErrNotAdjacent
// otherwise).
func (e *Evaluator) Score(c Candidate, front, lookahead []circuit.Operation) (Breakdown, error) {
	f, err := e.g.Fidelity(c.A, c.B)
	if err != nil {
		return Breakdown{}, fmt.Errorf("Score(%s): %w", c, err)
	}

	var b Breakdown
	for _, op := range front {
		if op.Kind != circuit.Two {
			continue
		}
		d, err := e.distanceAfter(c, op)
		if err != nil {
			return Breakdown{}, fmt.Errorf("Score(%s): %w", c, err)
		}
		b.Primary += float64(d)
	}

	w := e.cfg.Decay
	for _, op := range lookahead {
		if op.Kind != circuit.Two {
			continue
		}
		d, err := e.distanceAfter(c, op)
		if err != nil {
			return Breakdown{}, fmt.Errorf("Score(%s): %w", c, err)
		}
		b.Secondary += w * float64(d)
		w *= e.cfg.Decay
	}

	b.Penalty = e.cfg.FidelityPenalty * (1 - f)
	b.Total = b.Primary + b.Secondary + b.Penalty
	return b, nil
}

// Best scores every candidate and returns the minimum under Less.
// ok is false when cands is empty.
func (e *Evaluator) Best(cands []Candidate, front, lookahead []circuit.Operation) (best Scored, ok bool, err error) {
	for _, c := range cands {
		b, err := e.Score(c, front, lookahead)
		if err != nil {
			return Scored{}, false, err
		}
		s := Scored{Candidate: c, Breakdown: b}
		if !ok || Less(s, best) {
			best, ok = s, true
		}
	}
	return best, ok, nil
}

// Candidates returns every edge incident to a site holding an operand of
// one of the blocked operations, deduplicated and in ascending (A, B) order.
func (e *Evaluator) Candidates(blocked []circuit.Operation) ([]Candidate, error) {
	seen := make(map[Candidate]struct{})
	var out []Candidate
	for _, op := range blocked {
		for _, q := range op.Operands() {
			s, err := e.m.PhysicalOf(q)
			if err != nil {
				return nil, fmt.Errorf("Candidates: %w", err)
			}
			nbrs, err := e.g.Neighbors(s)
			if err != nil {
				return nil, fmt.Errorf("Candidates: %w", err)
			}
			for _, n := range nbrs {
				c := Candidate{A: s, B: n}
				if c.A > c.B {
					c.A, c.B = c.B, c.A
				}
				if _, dup := seen[c]; dup {
					continue
				}
				seen[c] = struct{}{}
				out = append(out, c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out, nil
}

// distanceAfter is the hop distance between op's operands once c is applied.
func (e *Evaluator) distanceAfter(c Candidate, op circuit.Operation) (int, error) {
	a, err := e.m.PhysicalOf(op.Qubits[0])
	if err != nil {
		return 0, err
	}
	b, err := e.m.PhysicalOf(op.Qubits[1])
	if err != nil {
		return 0, err
	}
	return e.g.Distance(c.swapped(a), c.swapped(b))
}

// swapped maps a site through the candidate exchange.
func (c Candidate) swapped(s topology.Site) topology.Site {
	switch s {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}
	return s
}
