package qasm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/qasm"
	"github.com/katalvlaran/qmap/router"
)

func TestExport_Golden(t *testing.T) {
	g, err := builder.BuildNamed("linear3")
	require.NoError(t, err)
	ops, err := circuit.ParseString("H q0\nCNOT q0, q2\nsdg q2\nCZ q1, q2\n")
	require.NoError(t, err)
	res, err := router.Route(g, ops)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, qasm.Export(&buf, res, g.Order()))
	want := strings.Join([]string{
		"OPENQASM 3.0;",
		`include "stdgates.inc";`,
		"qubit[3] p;",
		"h p[0];",
		"swap p[1], p[2];",
		"cx p[0], p[1];",
		"sdg p[1];",
		"cz p[2], p[1];",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestExport_TooFewSites(t *testing.T) {
	g, err := builder.BuildNamed("linear4")
	require.NoError(t, err)
	res, err := router.Route(g, []circuit.Operation{circuit.NewSingle("X", 3)})
	require.NoError(t, err)

	err = qasm.Export(&bytes.Buffer{}, res, 3)
	assert.ErrorIs(t, err, qasm.ErrTooFewSites)
}

func TestGateName(t *testing.T) {
	assert.Equal(t, "cx", qasm.GateName("CNOT"))
	assert.Equal(t, "id", qasm.GateName("I"))
	assert.Equal(t, "swap", qasm.GateName("SWAP"))
	assert.Equal(t, "tdg", qasm.GateName("TDG"))
}
