// Package qasm writes routed programs as OpenQASM 3.0.
//
// The output declares one physical register p of the topology's size and
// addresses every gate by site:
//
//	OPENQASM 3.0;
//	include "stdgates.inc";
//	qubit[3] p;
//	swap p[0], p[1];
//	cx p[1], p[2];
package qasm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/qmap/emit"
)

// ErrTooFewSites indicates a register smaller than a site the program uses.
var ErrTooFewSites = errors.New("qasm: register smaller than used sites")

// gateNames maps circuit gate names to their stdgates.inc spelling where
// lower-casing is not enough.
var gateNames = map[string]string{
	"CNOT": "cx",
	"I":    "id",
}

// GateName returns the OpenQASM 3.0 spelling of gate.
func GateName(gate string) string {
	if n, ok := gateNames[strings.ToUpper(gate)]; ok {
		return n
	}
	return strings.ToLower(gate)
}

// Export writes res to w over a register of sites qubits.
func Export(w io.Writer, res *emit.Result, sites int) error {
	for _, st := range res.Steps {
		for _, s := range st.Sites {
			if int(s) >= sites {
				return fmt.Errorf("Export: %s with %d sites: %w", s, sites, ErrTooFewSites)
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "OPENQASM 3.0;")
	fmt.Fprintln(bw, `include "stdgates.inc";`)
	fmt.Fprintf(bw, "qubit[%d] p;\n", sites)
	for _, st := range res.Steps {
		switch st.Kind {
		case emit.StepSwap:
			fmt.Fprintf(bw, "swap p[%d], p[%d];\n", st.Sites[0], st.Sites[1])
		case emit.StepTwo:
			fmt.Fprintf(bw, "%s p[%d], p[%d];\n", GateName(st.Op.Gate), st.Sites[0], st.Sites[1])
		case emit.StepSingle:
			fmt.Fprintf(bw, "%s p[%d];\n", GateName(st.Op.Gate), st.Sites[0])
		}
	}
	return bw.Flush()
}
