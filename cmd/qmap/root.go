package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/config"
	"github.com/katalvlaran/qmap/metrics"
	"github.com/katalvlaran/qmap/topology"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath  string
	logLevel    string
	dumpMetrics bool

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "qmap",
		Short: "Fidelity-aware qubit routing",
		Long: `qmap maps a logical quantum circuit onto a physical qubit topology,
inserting SWAPs where two-qubit gates act on qubits that are not coupled.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "qmap.toml", "path to the TOML configuration")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override [log] level")
	root.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	root.AddCommand(newRouteCmd(a), newBenchCmd(a), newTopologyCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	logger, err := cfg.Log.Logger()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.NewCollector(a.registry)
	return nil
}

func (a *app) teardown(stderr io.Writer) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.dumpMetrics && a.registry != nil {
		return metrics.WriteText(stderr, a.registry)
	}
	return nil
}

// buildTopology resolves name with the [topology] fidelity overrides of
// the configuration when name is the configured topology.
func (a *app) buildTopology(name string) (*topology.Graph, error) {
	var extra []builder.BuilderOption
	if name == a.cfg.Topology.Name {
		for _, f := range a.cfg.Topology.Fidelity {
			extra = append(extra, builder.WithEdgeFidelity(topology.Site(f.U), topology.Site(f.V), f.Value))
		}
	}
	return builder.BuildNamed(name, extra...)
}

// readCircuit parses path, or stdin when path is "" or "-".
func readCircuit(cmd *cobra.Command, path string) ([]circuit.Operation, error) {
	if path == "" || path == "-" {
		return circuit.Parse(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open circuit: %w", err)
	}
	defer f.Close()
	ops, err := circuit.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ops, nil
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
