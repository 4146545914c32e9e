package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestBase62RoundTrip(t *testing.T) {
	// Exercised via the package's exported signature round-trip instead of
	// the unexported encoder directly: build a chain automaton with k
	// states, take its signature, and reconstruct it.
	for k := 70; k < 10000; k += 109 {
		a := automata.NewAutomaton(automata.WithAlphabet(automata.DefaultAlphabet()))
		prev := a.AddState("q0", true, false, nil, false)
		for i := 1; i < k; i++ {
			final := i == k-1
			next := a.AddState("", false, final, nil, true)
			a.AddEdge(prev, next, 'a')
			prev = next
		}
		sig, err := a.SignatureDFS()
		require.NoError(t, err)
		rebuilt, err := automata.ConstructFromSignature(sig)
		require.NoError(t, err)
		require.Equal(t, k, rebuilt.NumStates())
		resig, err := rebuilt.SignatureDFS()
		require.NoError(t, err)
		require.Equal(t, sig, resig)
	}
}

func TestSignatureNumberedDFSMatchesSignatureDFS(t *testing.T) {
	a := automata.NewAutomaton(automata.WithAlphabet(automata.DefaultAlphabet()))
	q0 := a.AddState("x", true, false, nil, false)
	q1 := a.AddState("y", false, true, nil, false)
	q2 := a.AddState("z", false, false, nil, false)
	a.AddEdge(q0, q1, 'a')
	a.AddEdge(q0, q2, 'b')
	a.AddEdge(q1, q1, 'a')
	a.AddEdge(q1, q2, 'b')
	a.AddEdge(q2, q2, 'a')
	a.AddEdge(q2, q2, 'b')

	sig1, err := a.SignatureDFS()
	require.NoError(t, err)
	sig2, err := a.SignatureNumberedDFS()
	require.NoError(t, err)
	require.Equal(t, sig1, sig2)
}

func TestEquivalentAfterRename(t *testing.T) {
	re, err := automata.Parse("(a+b)*a")
	require.NoError(t, err)
	a := re.EquivalentAutomaton()
	n := a.NumStates()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	renamed, err := a.RenameStates(perm)
	require.NoError(t, err)
	require.True(t, automata.Equivalent(a, renamed))
}

func TestRenameStatesLengthMismatch(t *testing.T) {
	a := automata.NewAutomaton()
	a.AddState("q0", true, true, nil, false)
	_, err := a.RenameStates([]int{0, 1})
	require.ErrorIs(t, err, automata.ErrPermutationLength)
}
