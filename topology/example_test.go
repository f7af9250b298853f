package topology_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmap/topology"
)

// ExampleNew builds the 2×2 grid and queries it.
func ExampleNew() {
	g, err := topology.New(4, []topology.Edge{
		{U: 0, V: 1, Fidelity: 1},
		{U: 0, V: 2, Fidelity: 0.97},
		{U: 1, V: 3, Fidelity: 1},
		{U: 2, V: 3, Fidelity: 1},
	}, topology.WithName("grid2x2"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := g.Distance(0, 3)
	f, _ := g.Fidelity(2, 0)
	fmt.Println(g.Name(), "diameter", g.Diameter())
	fmt.Println("P0→P3 hops:", d)
	fmt.Printf("P0-P2 fidelity: %.2f\n", f)
	// Output:
	// grid2x2 diameter 2
	// P0→P3 hops: 2
	// P0-P2 fidelity: 0.97
}

// ExampleNew_disconnected shows the construction-time connectivity check.
func ExampleNew_disconnected() {
	_, err := topology.New(4, []topology.Edge{
		{U: 0, V: 1, Fidelity: 1},
		{U: 2, V: 3, Fidelity: 1},
	})
	fmt.Println(errors.Is(err, topology.ErrDisconnectedTopology))
	// Output:
	// true
}
