package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qmap/builder"
)

func newTopologyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topology [name]",
		Short: "Describe a topology, or list the known names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, n := range builder.Names() {
					fmt.Fprintln(out, n)
				}
				return nil
			}
			g, err := a.buildTopology(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\nsites: %d  edges: %d  diameter: %d\n",
				g, g.Order(), len(g.Edges()), g.Diameter())
			return nil
		},
	}
}
