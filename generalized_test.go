package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestGeneralizedRoundTrip(t *testing.T) {
	res, err := automata.Sample.EndsWith("ab")
	require.NoError(t, err)
	a := res.Automaton

	re := automata.CopyOf(a).EquivalentRE()
	require.True(t, automata.Equivalent(re.EquivalentAutomaton(), a))
}

func TestGeneralizedComplementGolden(t *testing.T) {
	sub, err := automata.Sample.Subword("ab")
	require.NoError(t, err)
	comp := sub.Automaton.Complement()

	re := automata.CopyOf(comp).EquivalentRE()
	require.True(t, automata.Equivalent(re.EquivalentAutomaton(), comp))
}
