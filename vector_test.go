package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	v1 := automata.NewVector(1, 2)
	v2 := automata.NewVector(3, 4)
	require.Equal(t, automata.NewVector(4, 6), v1.Add(v2))
	require.Equal(t, automata.NewVector(-2, -2), v1.Sub(v2))
	require.Equal(t, automata.NewVector(2, 4), v1.Scale(2))
	require.InDelta(t, 5, automata.NewVector(3, 4).Length(), 1e-9)
}

func TestVectorNormalize(t *testing.T) {
	v := automata.NewVector(3, 4)
	n := v.Normalize()
	require.InDelta(t, 1, n.Length(), 1e-9)

	zero := automata.NewVector(0, 0)
	require.Equal(t, zero, zero.Normalize())
}
