package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/topology"
)

func TestIdentity(t *testing.T) {
	m := mapping.Identity(3)
	assert.Equal(t, 3, m.Len())
	for i := 0; i < 3; i++ {
		s, err := m.PhysicalOf(circuit.Qubit(i))
		require.NoError(t, err)
		assert.Equal(t, topology.Site(i), s)
		q, err := m.LogicalAt(topology.Site(i))
		require.NoError(t, err)
		assert.Equal(t, circuit.Qubit(i), q)
	}
	assert.NoError(t, m.Validate())
	assert.Equal(t, "{q0->P0, q1->P1, q2->P2}", m.String())
}

func TestNew(t *testing.T) {
	m, err := mapping.New([]topology.Site{2, 0, 1})
	require.NoError(t, err)
	q, _ := m.LogicalAt(2)
	assert.Equal(t, circuit.Qubit(0), q)
	require.NoError(t, m.Validate())

	for name, assign := range map[string][]topology.Site{
		"duplicate":    {0, 0, 1},
		"out of range": {0, 3, 1},
		"negative":     {-1, 0},
	} {
		_, err := mapping.New(assign)
		assert.ErrorIs(t, err, mapping.ErrNotBijective, name)
	}

	empty, err := mapping.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestUnmapped(t *testing.T) {
	m := mapping.Identity(2)
	_, err := m.PhysicalOf(2)
	assert.ErrorIs(t, err, mapping.ErrUnmapped)
	_, err = m.PhysicalOf(-1)
	assert.ErrorIs(t, err, mapping.ErrUnmapped)
	_, err = m.LogicalAt(5)
	assert.ErrorIs(t, err, mapping.ErrUnmapped)
}

func TestApplySwap(t *testing.T) {
	m := mapping.Identity(4)
	require.NoError(t, m.ApplySwap(0, 2))
	s, _ := m.PhysicalOf(0)
	assert.Equal(t, topology.Site(2), s)
	s, _ = m.PhysicalOf(2)
	assert.Equal(t, topology.Site(0), s)
	q, _ := m.LogicalAt(2)
	assert.Equal(t, circuit.Qubit(0), q)
	assert.NoError(t, m.Validate())

	// Swapping back restores identity.
	require.NoError(t, m.ApplySwap(2, 0))
	assert.True(t, m.Snapshot().Equal(mapping.Identity(4).Snapshot()))

	before := m.Snapshot()
	assert.ErrorIs(t, m.ApplySwap(1, 1), mapping.ErrInvalidSwap)
	assert.ErrorIs(t, m.ApplySwap(1, 4), mapping.ErrInvalidSwap)
	assert.ErrorIs(t, m.ApplySwap(-1, 0), mapping.ErrInvalidSwap)
	assert.True(t, before.Equal(m.Snapshot()), "failed swaps must not change the mapping")
}

func TestApplySwap_BijectionUnderSequence(t *testing.T) {
	m := mapping.Identity(6)
	swaps := [][2]topology.Site{{0, 1}, {1, 2}, {5, 0}, {3, 4}, {2, 5}, {4, 0}}
	for _, sw := range swaps {
		require.NoError(t, m.ApplySwap(sw[0], sw[1]))
		require.NoError(t, m.Validate())
	}
}

func TestSnapshotIsolation(t *testing.T) {
	m := mapping.Identity(3)
	snap := m.Snapshot()
	clone := m.Clone()
	require.NoError(t, m.ApplySwap(0, 1))

	assert.Equal(t, topology.Site(0), snap.Site(0))
	s, _ := clone.PhysicalOf(0)
	assert.Equal(t, topology.Site(0), s)
	assert.Equal(t, topology.Site(-1), snap.Site(7))
	assert.Equal(t, []topology.Site{0, 1, 2}, snap.Sites())
	assert.Equal(t, "{q0->P1, q1->P0, q2->P2}", m.Snapshot().String())

	back, err := m.Snapshot().Mapping()
	require.NoError(t, err)
	assert.Equal(t, m.String(), back.String())
	assert.False(t, snap.Equal(m.Snapshot()))
	assert.False(t, snap.Equal(mapping.Identity(2).Snapshot()))
}
