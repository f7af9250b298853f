package router

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/cost"
	"github.com/katalvlaran/qmap/emit"
	"github.com/katalvlaran/qmap/frontlayer"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/metrics"
	"github.com/katalvlaran/qmap/topology"
)

const methodRoute = "Route"

// engine holds the mutable state of one run.
type engine struct {
	g     *topology.Graph
	ops   []circuit.Operation
	m     *mapping.Mapping
	fl    *frontlayer.Manager
	eval  *cost.Evaluator
	out   *emit.Emitter
	opts  Options
	log   *zap.Logger
	state State
	stall int
}

// Route rewrites ops so that every two-qubit operation acts on adjacent
// sites of g, inserting SWAPs as needed.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrTooManyQubits, ErrMappingSize,
// circuit.ErrSameQubit, mapping.ErrUnmapped (negative qubit), *DeadlockError
// (errors.Is ErrRoutingDeadlock). Internal contract violations from mapping
// or frontlayer are returned wrapped.
//
// Complexity: each Blocked step costs O(C·(F+W)) for C candidates, F
// blocked ops and lookahead window W.
func Route(g *topology.Graph, ops []circuit.Operation, opts ...Option) (*emit.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.RunID == "" {
		o.RunID = uuid.New().String()
	}

	n := g.Order()
	for i, op := range ops {
		for _, q := range op.Operands() {
			if q < 0 {
				return nil, fmt.Errorf("%s: op %d (%s): %w", methodRoute, i, op, mapping.ErrUnmapped)
			}
		}
		if op.Kind == circuit.Two && op.Qubits[0] == op.Qubits[1] {
			return nil, fmt.Errorf("%s: op %d (%s): %w", methodRoute, i, op, circuit.ErrSameQubit)
		}
	}
	if nq := circuit.NumQubits(ops); nq > n {
		return nil, fmt.Errorf("%s: %d qubits on %d sites: %w", methodRoute, nq, n, ErrTooManyQubits)
	}
	var m *mapping.Mapping
	if o.Initial != nil {
		if o.Initial.Len() != n {
			return nil, fmt.Errorf("%s: mapping of %d on %d sites: %w", methodRoute, o.Initial.Len(), n, ErrMappingSize)
		}
		m = o.Initial.Clone()
	} else {
		m = mapping.Identity(n)
	}
	if o.MaxStall < 0 {
		o.MaxStall = 2*g.Diameter() + 2
	}

	eval, err := cost.NewEvaluator(g, m, o.Cost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRoute, err)
	}

	e := &engine{
		g:    g,
		ops:  ops,
		m:    m,
		fl:   frontlayer.New(ops),
		eval: eval,
		out:  emit.NewEmitter(m.Snapshot()),
		opts: o,
		log: o.Logger.Named("router").With(
			zap.String("run_id", o.RunID),
			zap.String("topology", g.Name()),
		),
		state: Scanning,
	}

	start := time.Now()
	err = e.run()
	elapsed := time.Since(start)

	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, ErrRoutingDeadlock) {
			outcome = metrics.OutcomeDeadlock
		}
		o.Metrics.ObserveRun(g.Name(), outcome, 0, 0, elapsed)
		e.log.Error("routing failed", zap.Error(err))
		return nil, err
	}

	res := e.out.Result()
	res.Topology = g.Name()
	res.RunID = o.RunID
	o.Metrics.ObserveRun(g.Name(), metrics.OutcomeOK, res.SwapCount(), res.ForcedCount(), elapsed)
	e.log.Info("routing complete",
		zap.Int("ops", len(ops)),
		zap.Int("swaps", res.SwapCount()),
		zap.Int("forced", res.ForcedCount()),
		zap.Float64("swap_cost", res.SwapCost()),
		zap.Duration("elapsed", elapsed),
	)
	return res, nil
}

// run drives the state machine to Done.
func (e *engine) run() error {
	for e.state != Done {
		switch e.state {
		case Scanning:
			retired, err := e.drain()
			if err != nil {
				return err
			}
			if retired > 0 {
				e.stall = 0
			}
			if e.fl.Done() {
				e.transition(Done)
			} else {
				e.transition(Blocked)
			}
		case Blocked:
			if err := e.resolve(); err != nil {
				return err
			}
			e.transition(Scanning)
		}
	}
	return nil
}

func (e *engine) transition(to State) {
	from := e.state
	e.state = to
	e.log.Debug("state transition", zap.Stringer("from", from), zap.Stringer("to", to))
	e.opts.Observer.OnState(from, to)
}

// drain retires ready operations pass after pass until a pass retires
// nothing. It returns the number retired.
func (e *engine) drain() (int, error) {
	total := 0
	for {
		retired := 0
		for _, i := range e.fl.Front() {
			op := e.fl.Op(i)
			a, err := e.m.PhysicalOf(op.Qubits[0])
			if err != nil {
				return total, fmt.Errorf("%s: %w", methodRoute, err)
			}
			b := a
			if op.Kind == circuit.Two {
				if b, err = e.m.PhysicalOf(op.Qubits[1]); err != nil {
					return total, fmt.Errorf("%s: %w", methodRoute, err)
				}
				if !e.g.Adjacent(a, b) {
					continue
				}
			}
			if err := e.fl.Retire(i); err != nil {
				return total, fmt.Errorf("%s: %w", methodRoute, err)
			}
			if op.Kind == circuit.Two {
				e.out.Two(i, op, a, b)
			} else {
				e.out.Single(i, op, a)
			}
			e.opts.Observer.OnRetire(i, op, [2]topology.Site{a, b})
			retired++
		}
		total += retired
		if retired == 0 {
			return total, nil
		}
	}
}

// resolve picks and applies one swap for the blocked front layer.
func (e *engine) resolve() error {
	front := e.fl.Front()
	blocked := make([]circuit.Operation, len(front))
	for k, i := range front {
		blocked[k] = e.fl.Op(i)
	}

	ahead := e.fl.Lookahead(e.opts.Cost.Window)
	lookahead := make([]circuit.Operation, len(ahead))
	for k, i := range ahead {
		lookahead[k] = e.fl.Op(i)
	}

	var (
		cand   cost.Candidate
		score  cost.Breakdown
		forced bool
	)
	if e.stall >= e.opts.MaxStall {
		c, err := e.forcedStep(front[0])
		if err != nil {
			return err
		}
		if score, err = e.eval.Score(c, blocked, lookahead); err != nil {
			return fmt.Errorf("%s: %w", methodRoute, err)
		}
		cand, forced = c, true
	} else {
		cands, err := e.eval.Candidates(blocked)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRoute, err)
		}
		best, ok, err := e.eval.Best(cands, blocked, lookahead)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRoute, err)
		}
		if !ok {
			return &DeadlockError{Index: front[0], Op: blocked[0], Layout: e.m.Snapshot()}
		}
		cand, score = best.Candidate, best.Breakdown
	}

	return e.apply(cand, score, forced)
}

// forcedStep returns the first edge of a shortest path between the
// operands of op i, preferring paths whose couplings all reach the
// fidelity floor.
func (e *engine) forcedStep(i int) (cost.Candidate, error) {
	op := e.fl.Op(i)
	a, err := e.m.PhysicalOf(op.Qubits[0])
	if err != nil {
		return cost.Candidate{}, fmt.Errorf("%s: %w", methodRoute, err)
	}
	b, err := e.m.PhysicalOf(op.Qubits[1])
	if err != nil {
		return cost.Candidate{}, fmt.Errorf("%s: %w", methodRoute, err)
	}
	path, err := e.g.ReliablePath(a, b, e.opts.FidelityFloor)
	if err != nil || len(path) < 3 {
		return cost.Candidate{}, &DeadlockError{Index: i, Op: op, Layout: e.m.Snapshot()}
	}
	c := cost.Candidate{A: path[0], B: path[1]}
	if c.A > c.B {
		c.A, c.B = c.B, c.A
	}
	return c, nil
}

// apply performs the swap on the mapping and records it.
func (e *engine) apply(c cost.Candidate, score cost.Breakdown, forced bool) error {
	f, err := e.g.Fidelity(c.A, c.B)
	if err != nil {
		return fmt.Errorf("%s: %w", methodRoute, err)
	}
	if err := e.m.ApplySwap(c.A, c.B); err != nil {
		return fmt.Errorf("%s: %w", methodRoute, err)
	}
	if err := e.m.Validate(); err != nil {
		return fmt.Errorf("%s: after swap %s: %w", methodRoute, c, err)
	}
	e.stall++

	rec := e.out.Swap(emit.SwapRecord{
		A:        c.A,
		B:        c.B,
		Fidelity: f,
		Score:    score,
		Forced:   forced,
	}, e.m.Snapshot())
	e.log.Debug("swap inserted",
		zap.Stringer("a", c.A),
		zap.Stringer("b", c.B),
		zap.Float64("score", score.Total),
		zap.Bool("forced", forced),
		zap.Int("position", rec.Position),
	)
	e.opts.Observer.OnSwap(rec)
	return nil
}
