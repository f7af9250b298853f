// Package bench routes one program over several topologies concurrently
// and reports SWAP overhead side by side.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/router"
	"github.com/katalvlaran/qmap/topology"
)

// DefaultParallel is the number of concurrent runs when none is set.
const DefaultParallel = 4

// Row is the outcome of routing the program on one topology.
type Row struct {
	RunID    string
	Topology string
	Sites    int
	Swaps    int
	Forced   int
	SwapCost float64
	TotalOps int
	Overhead int
	Elapsed  time.Duration

	// Err is set when the topology could not be built or routing failed;
	// the numeric fields are then zero.
	Err error
}

// Option configures Run.
type Option func(*options)

type options struct {
	parallel int
	router   []router.Option
	logger   *zap.Logger
}

// WithParallel bounds the number of concurrent runs; n < 1 is ignored.
func WithParallel(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.parallel = n
		}
	}
}

// WithRouterOptions passes opts to every router.Route call.
func WithRouterOptions(opts ...router.Option) Option {
	return func(o *options) { o.router = append(o.router, opts...) }
}

// WithLogger sets the logger handed to the router.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Target is a topology to benchmark, or the error that prevented building it.
type Target struct {
	Name  string
	Graph *topology.Graph
	Err   error
}

// Named resolves every name through builder.BuildNamed. Failures are kept
// in the Target so the report can show them.
func Named(names []string) []Target {
	out := make([]Target, len(names))
	for i, n := range names {
		g, err := builder.BuildNamed(n)
		out[i] = Target{Name: n, Graph: g, Err: err}
	}
	return out
}

// Run routes ops on every target and returns one row per target, in input
// order. Per-target failures land in Row.Err; Run itself fails only when
// ctx is cancelled before all runs started.
func Run(ctx context.Context, ops []circuit.Operation, targets []Target, opts ...Option) ([]Row, error) {
	o := options{parallel: DefaultParallel, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	rows := make([]Row, len(targets))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallel)
	for i := range targets {
		idx := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[idx] = runOne(ops, targets[idx], o)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	return rows, nil
}

func runOne(ops []circuit.Operation, t Target, o options) Row {
	row := Row{RunID: uuid.New().String(), Topology: t.Name}
	if t.Err != nil {
		row.Err = t.Err
		return row
	}
	row.Sites = t.Graph.Order()

	ropts := append([]router.Option{
		router.WithRunID(row.RunID),
		router.WithLogger(o.logger),
	}, o.router...)
	start := time.Now()
	res, err := router.Route(t.Graph, ops, ropts...)
	row.Elapsed = time.Since(start)
	if err != nil {
		row.Err = err
		return row
	}
	row.Swaps = res.SwapCount()
	row.Forced = res.ForcedCount()
	row.SwapCost = res.SwapCost()
	row.TotalOps = res.Len()
	row.Overhead = res.Len() - len(ops)
	return row
}
