// Package metrics defines the Prometheus collectors recorded by routing runs.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Outcome label values for RoutingRuns.
const (
	OutcomeOK       = "ok"
	OutcomeDeadlock = "deadlock"
	OutcomeError    = "error"
)

// Collector groups the routing metrics registered on one registry.
type Collector struct {
	RoutingRuns     *prometheus.CounterVec
	SwapsInserted   *prometheus.CounterVec
	ForcedSwaps     *prometheus.CounterVec
	RoutingDuration *prometheus.HistogramVec
}

// NewCollector registers the routing metrics on reg. A nil reg uses a
// fresh private registry, which keeps tests independent.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Collector{
		RoutingRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmap_routing_runs_total",
			Help: "Total number of routing runs, by topology and outcome.",
		}, []string{"topology", "outcome"}),

		SwapsInserted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmap_swaps_inserted_total",
			Help: "Total number of SWAP operations inserted by the router.",
		}, []string{"topology"}),

		ForcedSwaps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmap_forced_swaps_total",
			Help: "SWAPs inserted along a shortest path after the router stalled.",
		}, []string{"topology"}),

		RoutingDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qmap_routing_duration_seconds",
			Help:    "Wall time of one routing run.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"topology"}),
	}
}

// ObserveRun records one finished run. Nil collectors are ignored.
func (c *Collector) ObserveRun(topology, outcome string, swaps, forced int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.RoutingRuns.WithLabelValues(topology, outcome).Inc()
	c.SwapsInserted.WithLabelValues(topology).Add(float64(swaps))
	c.ForcedSwaps.WithLabelValues(topology).Add(float64(forced))
	c.RoutingDuration.WithLabelValues(topology).Observe(elapsed.Seconds())
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
