package builder_test

import (
	"fmt"

	"github.com/katalvlaran/qmap/builder"
)

// ExampleBuildTopology builds the 2×2 grid with one weaker link.
func ExampleBuildTopology() {
	g, err := builder.BuildTopology([]builder.BuilderOption{
		builder.WithName("grid2x2"),
		builder.WithEdgeFidelity(0, 2, 0.9),
	}, builder.Grid(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g)
	// Output:
	// grid2x2: P0-P1(1.00) P0-P2(0.90) P1-P3(1.00) P2-P3(1.00)
}

// ExampleBuildNamed resolves a preset by name.
func ExampleBuildNamed() {
	g, err := builder.BuildNamed("ring:4")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g)
	// Output:
	// ring:4: P0-P1(1.00) P0-P3(1.00) P1-P2(1.00) P2-P3(1.00)
}
