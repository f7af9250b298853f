package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/emit"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/qasm"
	"github.com/katalvlaran/qmap/router"
	"github.com/katalvlaran/qmap/topology"
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		topoName string
		format   string
		initial  string
	)
	cmd := &cobra.Command{
		Use:   "route [circuit-file]",
		Short: "Route a circuit onto a topology",
		Long: `Route reads a circuit (one gate per line, stdin when no file is given)
and prints the routed program.

Formats:
  ir       qmap dialect with layout snapshots (default)
  qasm     OpenQASM 3.0 over the physical register
  summary  operation counts and the inserted SWAPs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := readCircuit(cmd, argOrEmpty(args))
			if err != nil {
				return err
			}
			if topoName == "" {
				topoName = a.cfg.Topology.Name
			}
			g, err := a.buildTopology(topoName)
			if err != nil {
				return err
			}

			opts := []router.Option{
				router.WithCostConfig(a.cfg.Router.Cost()),
				router.WithLogger(a.logger),
				router.WithMetrics(a.metrics),
				router.WithFidelityFloor(a.cfg.Router.FidelityFloor),
			}
			if a.cfg.Router.MaxStall >= 0 {
				opts = append(opts, router.WithMaxStall(a.cfg.Router.MaxStall))
			}
			if initial != "" {
				m, err := parseInitial(initial, g.Order())
				if err != nil {
					return err
				}
				opts = append(opts, router.WithInitialMapping(m))
			}

			res, err := router.Route(g, ops, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "ir":
				return res.WriteIR(out)
			case "qasm":
				return qasm.Export(out, res, g.Order())
			case "summary":
				return writeSummary(out, ops, res)
			}
			return fmt.Errorf("unknown format %q (want ir, qasm or summary)", format)
		},
	}
	cmd.Flags().StringVarP(&topoName, "topology", "t", "", "topology name (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "ir", "output format: ir, qasm, summary")
	cmd.Flags().StringVar(&initial, "initial", "", "initial placement, comma-separated sites for q0,q1,...")
	return cmd
}

// parseInitial reads "2,0,1" as q0→P2, q1→P0, q2→P1. Sites not listed are
// filled in ascending order by the remaining qubits.
func parseInitial(s string, n int) (*mapping.Mapping, error) {
	parts := strings.Split(s, ",")
	if len(parts) > n {
		return nil, fmt.Errorf("--initial: %d sites given, topology has %d", len(parts), n)
	}
	assign := make([]topology.Site, 0, n)
	used := make([]bool, n)
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v >= n || used[v] {
			return nil, fmt.Errorf("--initial: bad site %q", p)
		}
		used[v] = true
		assign = append(assign, topology.Site(v))
	}
	for s := 0; s < n; s++ {
		if !used[s] {
			assign = append(assign, topology.Site(s))
		}
	}
	return mapping.New(assign)
}

func writeSummary(w io.Writer, ops []circuit.Operation, res *emit.Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Topology:             %s\n", res.Topology)
	fmt.Fprintf(&sb, "Run:                  %s\n", res.RunID)
	fmt.Fprintf(&sb, "Original operations:  %d\n", len(ops))
	fmt.Fprintf(&sb, "Routed operations:    %d\n", res.Len())
	fmt.Fprintf(&sb, "SWAPs inserted:       %d (forced %d)\n", res.SwapCount(), res.ForcedCount())
	fmt.Fprintf(&sb, "SWAP cost:            %.2f\n", res.SwapCost())
	fmt.Fprintf(&sb, "Overhead:             +%d operations\n", res.Len()-len(ops))
	for i, sw := range res.Swaps() {
		fmt.Fprintf(&sb, "  SWAP #%d: %s <-> %s (fidelity %.2f, score %.2f)\n", i+1, sw.A, sw.B, sw.Fidelity, sw.Score.Total)
	}
	fmt.Fprintf(&sb, "Final layout:         %s\n", res.Final())
	_, err := io.WriteString(w, sb.String())
	return err
}
