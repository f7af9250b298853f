package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/circuit"
)

func TestParse_Valid(t *testing.T) {
	src := `
# lookahead sample
H q0
CNOT q0, q1   // adjacent on a chain
cx q[0], q[2];
	cz q3,q1
sdg q2
SWAP q1, q2
`
	ops, err := circuit.ParseString(src)
	require.NoError(t, err)
	want := []circuit.Operation{
		circuit.NewSingle("H", 0),
		circuit.MustTwo("CNOT", 0, 1),
		circuit.MustTwo("CNOT", 0, 2),
		circuit.MustTwo("CZ", 3, 1),
		circuit.NewSingle("SDG", 2),
		circuit.MustTwo("SWAP", 1, 2),
	}
	assert.Equal(t, want, ops)
	assert.Equal(t, 4, circuit.NumQubits(ops))
	assert.Equal(t, 4, circuit.CountTwo(ops))
}

func TestParse_Empty(t *testing.T) {
	ops, err := circuit.ParseString("\n# nothing\n   \n// here\n")
	require.NoError(t, err)
	assert.Empty(t, ops)
	assert.Equal(t, 0, circuit.NumQubits(ops))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
		line string
	}{
		{"unknown gate", "H q0\nTOFFOLI q0, q1, q2", circuit.ErrUnknownGate, "line 2"},
		{"missing operand", "CNOT q0", circuit.ErrArity, "line 1"},
		{"extra operand", "H q0, q1", circuit.ErrArity, "line 1"},
		{"no operands", "\n\nX", circuit.ErrArity, "line 3"},
		{"same qubit", "CNOT q1, q1", circuit.ErrSameQubit, "line 1"},
		{"bad token", "H p0", circuit.ErrSyntax, "line 1"},
		{"negative", "H q-1", circuit.ErrSyntax, "line 1"},
		{"open bracket", "H q[2", circuit.ErrSyntax, "line 1"},
		{"empty operand", "CNOT q0,,q1", circuit.ErrSyntax, "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ops, err := circuit.ParseString(tc.src)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
			assert.Nil(t, ops)
		})
	}
}

func TestOperation_Helpers(t *testing.T) {
	op := circuit.MustTwo("CNOT", 2, 0)
	assert.Equal(t, circuit.Two, op.Kind)
	assert.Equal(t, []circuit.Qubit{2, 0}, op.Operands())
	assert.True(t, op.Touches(0))
	assert.False(t, op.Touches(1))
	assert.Equal(t, "CNOT q2, q0", op.String())

	h := circuit.NewSingle("H", 1)
	assert.Equal(t, []circuit.Qubit{1}, h.Operands())
	assert.True(t, h.Touches(1))
	assert.Equal(t, "H q1", h.String())
	assert.Equal(t, "single", circuit.Single.String())
	assert.Equal(t, "two", circuit.Two.String())

	_, err := circuit.NewTwo("CZ", 3, 3)
	assert.ErrorIs(t, err, circuit.ErrSameQubit)
	assert.Panics(t, func() { circuit.MustTwo("CZ", 3, 3) })
}

func TestParse_RoundTrip(t *testing.T) {
	ops := []circuit.Operation{
		circuit.NewSingle("H", 0),
		circuit.MustTwo("CNOT", 0, 3),
		circuit.NewSingle("T", 3),
	}
	var src string
	for _, op := range ops {
		src += op.String() + "\n"
	}
	got, err := circuit.ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, ops, got)
}
