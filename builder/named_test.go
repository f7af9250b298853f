package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
)

func TestBuildNamed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		sites int
		edges int
	}{
		{"linear3", 3, 2},
		{"linear4", 4, 3},
		{"grid2x2", 4, 4},
		{"heavyhex", 14, 15},
		{"path:5", 5, 4},
		{"ring:6", 6, 6},
		{"grid:3x3", 9, 12},
		{"star:5", 5, 4},
		{"complete:4", 4, 6},
		{" Grid2x2 ", 4, 4},
	}
	for _, tc := range cases {
		g, err := builder.BuildNamed(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.sites, g.Order(), tc.name)
		assert.Len(t, g.Edges(), tc.edges, tc.name)
	}
}

func TestBuildNamed_HeavyHexFidelities(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildNamed("heavyhex")
	require.NoError(t, err)
	assert.Equal(t, "heavyhex", g.Name())

	f, err := g.Fidelity(4, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.92, f)
	f, err = g.Fidelity(11, 9)
	require.NoError(t, err)
	assert.Equal(t, 0.95, f)
	f, err = g.Fidelity(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.99, f)

	// Caller options come after the preset's table.
	g, err = builder.BuildNamed("heavyhex", builder.WithEdgeFidelity(0, 1, 0.5))
	require.NoError(t, err)
	f, _ = g.Fidelity(0, 1)
	assert.Equal(t, 0.5, f)
}

func TestBuildNamed_Unknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "torus", "ring", "ring:x", "grid:3", "grid:ax2", "mesh:4"} {
		_, err := builder.BuildNamed(name)
		assert.ErrorIs(t, err, builder.ErrUnknownTopology, name)
	}
	_, err := builder.BuildNamed("ring:2")
	assert.ErrorIs(t, err, builder.ErrTooFewSites)
}

func TestNames(t *testing.T) {
	t.Parallel()
	assert.Contains(t, builder.Names(), "heavyhex")
	assert.Contains(t, builder.Names(), "grid:<rows>x<cols>")
}
