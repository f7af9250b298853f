package bench_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/bench"
	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/router"
)

var grid = []circuit.Operation{
	circuit.MustTwo("CNOT", 0, 3),
	circuit.MustTwo("CNOT", 1, 2),
	circuit.MustTwo("CNOT", 0, 2),
	circuit.MustTwo("CNOT", 1, 3),
}

func TestRun_ThreeTopologies(t *testing.T) {
	targets := bench.Named([]string{"linear4", "grid2x2", "heavyhex"})
	rows, err := bench.Run(context.Background(), grid, targets, bench.WithParallel(2))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, name := range []string{"linear4", "grid2x2", "heavyhex"} {
		r := rows[i]
		assert.Equal(t, name, r.Topology)
		require.NoError(t, r.Err, name)
		assert.NotEmpty(t, r.RunID)
		assert.Equal(t, len(grid)+r.Swaps, r.TotalOps)
		assert.Equal(t, r.Swaps, r.Overhead)
	}
	assert.Equal(t, 1, rows[1].Swaps, "grid2x2 needs one swap")
	assert.Equal(t, 14, rows[2].Sites)
	assert.NotEqual(t, rows[0].RunID, rows[1].RunID)
}

func TestRun_Failures(t *testing.T) {
	targets := append(bench.Named([]string{"linear3", "nope"}), bench.Named([]string{"complete:4"})...)
	rows, err := bench.Run(context.Background(), grid, targets)
	require.NoError(t, err)

	assert.ErrorIs(t, rows[0].Err, router.ErrTooManyQubits)
	assert.ErrorIs(t, rows[1].Err, builder.ErrUnknownTopology)
	assert.NoError(t, rows[2].Err)
	assert.Equal(t, 0, rows[2].Swaps)
	assert.Equal(t, []string{"linear3", "-", "FAILED"}, rows[0].Cells()[:3])
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.Run(ctx, grid, bench.Named([]string{"grid2x2"}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RouterOptions(t *testing.T) {
	rows, err := bench.Run(context.Background(), []circuit.Operation{circuit.MustTwo("CNOT", 0, 3)},
		bench.Named([]string{"linear4"}),
		bench.WithRouterOptions(router.WithMaxStall(0)),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, rows[0].Forced)
}

func TestRender(t *testing.T) {
	rows, err := bench.Run(context.Background(), grid, bench.Named([]string{"grid2x2", "linear3"}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bench.Render(&buf, len(grid), rows))
	out := buf.String()
	assert.Contains(t, out, "Original circuit size: 4 operations")
	for _, h := range bench.Headers {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "grid2x2")
	assert.Contains(t, out, "+1")
	assert.Contains(t, out, "FAILED")
}
