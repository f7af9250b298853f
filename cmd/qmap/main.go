// Command qmap routes quantum circuits onto coupling topologies.
//
//	qmap route circuit.txt --topology grid2x2 --format qasm
//	qmap bench circuit.txt --topologies linear4,grid2x2,heavyhex
//	qmap topology heavyhex
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
