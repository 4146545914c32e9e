package automata_test

import (
	"context"
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestMakeDeterministicPreservesLanguage(t *testing.T) {
	res, err := automata.Sample.EndsWith("ab")
	require.NoError(t, err)
	a := res.Automaton
	require.False(t, a.IsDeterministic())
	det := a.MakeDeterministic()
	require.True(t, det.IsDeterministic())
	require.True(t, automata.Equivalent(a, det))
}

func TestMakeDeterministicAlreadyDeterministic(t *testing.T) {
	a := automata.NewAutomaton()
	q0 := a.AddState("q0", true, true, nil, false)
	q1 := a.AddState("q1", false, false, nil, false)
	a.AddEdge(q0, q1, 'a')
	det := a.MakeDeterministic()
	require.True(t, automata.Equivalent(a, det))
}

func TestMakeDeterministicContextCancelled(t *testing.T) {
	res, err := automata.Sample.EndsWith("ab")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = res.Automaton.MakeDeterministicContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
