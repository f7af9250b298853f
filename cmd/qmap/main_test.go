package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/topology"
)

const gridCircuit = `# four CNOTs on a 2x2 grid
CNOT q0, q3
CNOT q1, q2
CNOT q0, q2
CNOT q1, q3
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	base := []string{"--config", filepath.Join(t.TempDir(), "none.toml"), "--log-level", "error"}
	cmd.SetArgs(append(args[:1:1], append(base, args[1:]...)...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRouteCmd_IR(t *testing.T) {
	out, _, err := execute(t, gridCircuit, "route", "--topology", "grid2x2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "qmap.current_layout {q0->P0, q1->P1, q2->P2, q3->P3}\n"))
	assert.Contains(t, out, "qmap.insert_swap %P0, %P2\n")
	assert.Equal(t, 4, strings.Count(out, "qmap.two_qubit @CNOT"))
}

func TestRouteCmd_QASMFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.txt")
	require.NoError(t, os.WriteFile(path, []byte("H q0\nCNOT q0, q2\n"), 0o600))

	out, _, err := execute(t, "", "route", path, "-t", "linear3", "-f", "qasm")
	require.NoError(t, err)
	assert.Equal(t, "OPENQASM 3.0;\ninclude \"stdgates.inc\";\nqubit[3] p;\nh p[0];\nswap p[0], p[1];\ncx p[1], p[2];\n", out)
}

func TestRouteCmd_Summary(t *testing.T) {
	out, _, err := execute(t, gridCircuit, "route", "-t", "grid2x2", "-f", "summary", "--initial", "0,1,2,3")
	require.NoError(t, err)
	assert.Contains(t, out, "SWAPs inserted:       1 (forced 0)")
	assert.Contains(t, out, "SWAP #1: P0 <-> P2")
	assert.Contains(t, out, "Overhead:             +1 operations")
}

func TestRouteCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "FOO q0\n", "route", "-t", "grid2x2")
	assert.ErrorContains(t, err, "unknown gate")

	_, _, err = execute(t, gridCircuit, "route", "-t", "linear3")
	assert.ErrorContains(t, err, "more qubits than sites")

	_, _, err = execute(t, gridCircuit, "route", "-t", "grid2x2", "-f", "dot")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = execute(t, gridCircuit, "route", "-t", "grid2x2", "--initial", "0,0")
	assert.ErrorContains(t, err, "--initial")
}

func TestBenchCmd(t *testing.T) {
	out, errOut, err := execute(t, gridCircuit, "bench", "--topologies", "linear4,grid2x2,heavyhex", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "Original circuit size: 4 operations")
	assert.Contains(t, out, "heavyhex")
	assert.Contains(t, errOut, `qmap_routing_runs_total{outcome="ok",topology="grid2x2"} 1`)
}

func TestTopologyCmd(t *testing.T) {
	out, _, err := execute(t, "", "topology")
	require.NoError(t, err)
	assert.Contains(t, out, "heavyhex\n")

	out, _, err = execute(t, "", "topology", "linear3")
	require.NoError(t, err)
	assert.Equal(t, "linear3: P0-P1(1.00) P1-P2(1.00)\nsites: 3  edges: 2  diameter: 2\n", out)

	_, _, err = execute(t, "", "topology", "torus")
	assert.Error(t, err)
}

func TestParseInitial(t *testing.T) {
	m, err := parseInitial("2, 0", 4)
	require.NoError(t, err)
	assert.Equal(t, "{q0->P2, q1->P0, q2->P1, q3->P3}", m.String())
	s, _ := m.PhysicalOf(1)
	assert.Equal(t, topology.Site(0), s)

	for _, bad := range []string{"0,1,2,3,4", "x", "4", "-1", "1,1"} {
		_, err := parseInitial(bad, 4)
		assert.Error(t, err, bad)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qmap.toml")
	require.NoError(t, os.WriteFile(path, []byte("[topology]\nname = \"linear3\"\n[[topology.fidelity]]\nu = 1\nv = 2\nvalue = 0.9\n"), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"topology", "--config", path, "--log-level", "error", "linear3"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "P1-P2(0.90)")
}
