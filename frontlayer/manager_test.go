package frontlayer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/frontlayer"
)

func cnot(a, b circuit.Qubit) circuit.Operation { return circuit.MustTwo("CNOT", a, b) }

func TestFront_Dependencies(t *testing.T) {
	ops := []circuit.Operation{
		circuit.NewSingle("H", 0), // 0
		cnot(0, 1),                // 1: waits for 0
		cnot(2, 3),                // 2: free
		circuit.NewSingle("X", 1), // 3: waits for 1
		cnot(3, 0),                // 4: waits for 1 and 2
	}
	m := frontlayer.New(ops)
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, []int{0, 2}, m.Front())

	require.NoError(t, m.Retire(0))
	assert.Equal(t, []int{1, 2}, m.Front())

	require.NoError(t, m.Retire(1))
	assert.Equal(t, []int{2, 3}, m.Front())

	require.NoError(t, m.Retire(2))
	assert.Equal(t, []int{3, 4}, m.Front())

	require.NoError(t, m.Retire(4))
	require.NoError(t, m.Retire(3))
	assert.Empty(t, m.Front())
	assert.True(t, m.Done())
	assert.Equal(t, 0, m.Remaining())
}

func TestRetire_NotEligible(t *testing.T) {
	ops := []circuit.Operation{cnot(0, 1), cnot(1, 2)}
	m := frontlayer.New(ops)

	assert.ErrorIs(t, m.Retire(1), frontlayer.ErrNotEligible, "blocked by op 0")
	assert.ErrorIs(t, m.Retire(2), frontlayer.ErrNotEligible, "out of range")
	assert.ErrorIs(t, m.Retire(-1), frontlayer.ErrNotEligible)
	require.NoError(t, m.Retire(0))
	assert.ErrorIs(t, m.Retire(0), frontlayer.ErrNotEligible, "already retired")
	assert.Equal(t, 1, m.Remaining())
	assert.False(t, m.Done())
}

func TestFront_Empty(t *testing.T) {
	m := frontlayer.New(nil)
	assert.Empty(t, m.Front())
	assert.True(t, m.Done())
	assert.Empty(t, m.Lookahead(4))
}

func TestLookahead(t *testing.T) {
	ops := []circuit.Operation{
		cnot(0, 1),                // 0  front
		cnot(2, 3),                // 1  front
		circuit.NewSingle("H", 1), // 2  layer 1, not counted
		cnot(1, 2),                // 3  layer 2 (after 2)
		cnot(0, 3),                // 4  layer 1
		cnot(0, 1),                // 5  layer 3
	}
	m := frontlayer.New(ops)
	assert.Equal(t, []int{0, 1}, m.Front())
	assert.Equal(t, []int{4, 3, 5}, m.Lookahead(8))
	assert.Equal(t, []int{4, 3}, m.Lookahead(2))
	assert.Nil(t, m.Lookahead(0))

	// Lookahead is read-only.
	assert.Equal(t, []int{0, 1}, m.Front())
	assert.Equal(t, 6, m.Remaining())
}

func TestLookahead_Grid2x2Program(t *testing.T) {
	ops := []circuit.Operation{cnot(0, 3), cnot(1, 2), cnot(0, 2), cnot(1, 3)}
	m := frontlayer.New(ops)
	assert.Equal(t, []int{0, 1}, m.Front())
	assert.Equal(t, []int{2, 3}, m.Lookahead(8))
}
