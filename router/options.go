package router

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/qmap/cost"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/metrics"
)

// Option configures Route via functional arguments. Invalid values are
// recorded and surface as ErrOptionViolation when Route runs.
type Option func(*Options)

// Options holds the parameters of one routing run.
type Options struct {
	// Initial is the starting mapping; nil means identity. Route works on
	// a clone and never mutates it.
	Initial *mapping.Mapping

	// Cost holds the evaluator tunables.
	Cost cost.Config

	// MaxStall is the number of consecutive swaps without a retirement
	// after which swaps are forced along a shortest path. A negative value
	// selects the default, 2·diameter + 2.
	MaxStall int

	// FidelityFloor is the coupling fidelity forced swaps try to stay at
	// or above; shortest paths with a weaker link are used only when no
	// other shortest path exists. Zero accepts every coupling.
	FidelityFloor float64

	Logger   *zap.Logger
	Observer Observer
	Metrics  *metrics.Collector

	// RunID tags logs and the result; empty means a fresh UUID.
	RunID string

	err error
}

// DefaultOptions returns identity placement, cost.DefaultConfig, the
// diameter-based stall limit, a no-op logger and no observer.
func DefaultOptions() Options {
	return Options{
		Cost:     cost.DefaultConfig(),
		MaxStall: -1,
		Logger:   zap.NewNop(),
		Observer: Hooks{},
	}
}

// WithInitialMapping starts routing from m instead of the identity.
func WithInitialMapping(m *mapping.Mapping) Option {
	return func(o *Options) {
		if m != nil {
			o.Initial = m
		}
	}
}

// WithCostConfig replaces the evaluator tunables.
func WithCostConfig(c cost.Config) Option {
	return func(o *Options) {
		if err := c.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Cost = c
	}
}

// WithMaxStall sets the stall limit.
//
//	k > 0: force after k unproductive swaps
//	k == 0: force every swap (plain shortest-path routing)
//	k < 0: invalid → ErrOptionViolation
func WithMaxStall(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxStall cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxStall = k
	}
}

// WithFidelityFloor sets the fidelity floor for forced swaps.
// f outside [0,1] → ErrOptionViolation.
func WithFidelityFloor(f float64) Option {
	return func(o *Options) {
		if !(f >= 0 && f <= 1) {
			o.err = fmt.Errorf("%w: FidelityFloor %v outside [0,1]", ErrOptionViolation, f)
			return
		}
		o.FidelityFloor = f
	}
}

// WithLogger sets the zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an event observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithMetrics records the run on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Options) { o.Metrics = c }
}

// WithRunID sets the run identifier.
func WithRunID(id string) Option {
	return func(o *Options) { o.RunID = id }
}
