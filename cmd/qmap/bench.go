package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qmap/bench"
	"github.com/katalvlaran/qmap/router"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		names    []string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "bench [circuit-file]",
		Short: "Compare routing overhead across topologies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := readCircuit(cmd, argOrEmpty(args))
			if err != nil {
				return err
			}
			if len(names) == 0 {
				names = a.cfg.Bench.Topologies
			}
			if parallel == 0 {
				parallel = a.cfg.Bench.Parallel
			}

			targets := make([]bench.Target, len(names))
			for i, n := range names {
				g, err := a.buildTopology(n)
				targets[i] = bench.Target{Name: n, Graph: g, Err: err}
			}

			ropts := []router.Option{
				router.WithCostConfig(a.cfg.Router.Cost()),
				router.WithMetrics(a.metrics),
				router.WithFidelityFloor(a.cfg.Router.FidelityFloor),
			}
			if a.cfg.Router.MaxStall >= 0 {
				ropts = append(ropts, router.WithMaxStall(a.cfg.Router.MaxStall))
			}
			rows, err := bench.Run(cmd.Context(), ops, targets,
				bench.WithParallel(parallel),
				bench.WithLogger(a.logger),
				bench.WithRouterOptions(ropts...),
			)
			if err != nil {
				return err
			}
			return bench.Render(cmd.OutOrStdout(), len(ops), rows)
		},
	}
	cmd.Flags().StringSliceVar(&names, "topologies", nil, "topologies to compare (default from config)")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "concurrent runs (default from config)")
	return cmd
}
