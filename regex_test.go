package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestRegexStringRendering(t *testing.T) {
	require.Equal(t, "0", automata.Empty().String())
	require.Equal(t, "E", automata.Word("").String())
	require.Equal(t, "ab", automata.Word("ab").String())
	require.Equal(t, "a*", automata.Star(automata.Word("a")).String())
	require.Equal(t, "(ab)*", automata.Star(automata.Word("ab")).String())
	require.Equal(t, "a+b", automata.Sum(automata.Word("a"), automata.Word("b")).String())
	require.Equal(t, "ab", automata.Concat(automata.Word("a"), automata.Word("b")).String())
	require.Equal(t, "(a+b)a", automata.Concat(automata.Sum(automata.Word("a"), automata.Word("b")), automata.Word("a")).String())
}

func TestRegexAcceptsAndSimilar(t *testing.T) {
	re, err := automata.Parse("a(a+b)*+b(a+bb)*")
	require.NoError(t, err)
	require.True(t, re.Accepts("aa"))
	require.False(t, re.Accepts("bab"))

	other, err := automata.Parse("a(a+b)*")
	require.NoError(t, err)
	require.False(t, re.Similar(other))
	require.True(t, other.Similar(other))
}

func TestConcatEpsilonIdentity(t *testing.T) {
	eps := automata.Word("")
	a := automata.Word("a")
	require.Same(t, a, automata.Concat(eps, a))
	require.Same(t, a, automata.Concat(a, eps))
}

func TestStarSumConcatCache(t *testing.T) {
	re, err := automata.Parse("(a+b)*abb(a+b)*")
	require.NoError(t, err)
	min := re.EquivalentAutomaton().Minimize(automata.MinimizeHopcroft)
	sub, err := automata.Sample.Subword("abb")
	require.NoError(t, err)
	require.True(t, automata.Equivalent(min, sub.Automaton))
}
