package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestMinimizePreservesLanguage(t *testing.T) {
	res, err := automata.Sample.Minimize1()
	require.NoError(t, err)
	a := res.Automaton
	min := a.Minimize(automata.MinimizeHopcroft)
	require.True(t, automata.Equivalent(a, min))
}

func TestMinimizeHopcroftAgreesWithBrzozowski(t *testing.T) {
	re, err := automata.Parse("(a+b)*abb(a+b)*")
	require.NoError(t, err)
	a := re.EquivalentAutomaton()
	hop := a.Minimize(automata.MinimizeHopcroft)
	brz := a.Minimize(automata.MinimizeBrzozowski)
	require.True(t, automata.Equivalent(hop, brz))
}

func TestMinimize1CollapsesToTwoStates(t *testing.T) {
	res, err := automata.Sample.Minimize1()
	require.NoError(t, err)
	min := res.Automaton.Minimize(automata.MinimizeHopcroft)
	require.Equal(t, 2, min.NumStates())
}
