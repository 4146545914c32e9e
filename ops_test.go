package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestUnionAcceptsEitherOperand(t *testing.T) {
	a, err := automata.Sample.OnlyWord("a")
	require.NoError(t, err)
	b, err := automata.Sample.OnlyWord("b")
	require.NoError(t, err)
	u := a.Automaton.Union(b.Automaton)
	require.True(t, u.Accepts("a"))
	require.True(t, u.Accepts("b"))
	require.False(t, u.Accepts("ab"))
}

func TestConcatAcceptsConcatenation(t *testing.T) {
	a, err := automata.Sample.OnlyWord("a")
	require.NoError(t, err)
	b, err := automata.Sample.OnlyWord("b")
	require.NoError(t, err)
	c := a.Automaton.Concat(b.Automaton)
	require.True(t, c.Accepts("ab"))
	require.False(t, c.Accepts("a"))
	require.False(t, c.Accepts("ba"))
}

func TestConcatWithNullableOperands(t *testing.T) {
	eps, err := automata.Sample.OnlyEmptyWord()
	require.NoError(t, err)
	a, err := automata.Sample.OnlyWord("a")
	require.NoError(t, err)
	c := eps.Automaton.Concat(a.Automaton)
	require.True(t, c.Accepts("a"))
	require.False(t, c.Accepts(""))
}

func TestStarAcceptsEmptyAndRepetitions(t *testing.T) {
	a, err := automata.Sample.OnlyWord("ab")
	require.NoError(t, err)
	star := a.Automaton.Star()
	require.True(t, star.Accepts(""))
	require.True(t, star.Accepts("ab"))
	require.True(t, star.Accepts("abab"))
	require.False(t, star.Accepts("aba"))
}

func TestReducePreservesLanguage(t *testing.T) {
	res, err := automata.Sample.TestNormalize()
	require.NoError(t, err)
	a := res.Automaton
	reduced := a.Reduce()
	require.True(t, automata.Equivalent(a, reduced))
	require.Less(t, reduced.NumStates(), a.NumStates())
}

func TestCompleteAddsErrorState(t *testing.T) {
	res, err := automata.Sample.OnlyWord("a")
	require.NoError(t, err)
	complete := res.Automaton.Complete()
	_, hasError := complete.StateByName("error")
	require.True(t, hasError)
	for _, s := range complete.States() {
		for _, c := range complete.Alphabet().Symbols() {
			require.False(t, complete.Delta(s, c).IsEmpty())
		}
	}
}

func TestComplementInvertsAcceptance(t *testing.T) {
	res, err := automata.Sample.Subword("ab")
	require.NoError(t, err)
	comp := res.Automaton.Complement()
	words := []string{"", "a", "b", "ab", "ba", "aab", "bba"}
	for _, w := range words {
		require.Equal(t, !res.Automaton.Accepts(w), comp.Accepts(w), "word %q", w)
	}
}

func TestIntersectAndDifference(t *testing.T) {
	startsA, err := automata.Sample.StartsWith("a")
	require.NoError(t, err)
	endsB, err := automata.Sample.EndsWith("b")
	require.NoError(t, err)

	inter := startsA.Automaton.Intersect(endsB.Automaton)
	require.True(t, inter.Accepts("ab"))
	require.True(t, inter.Accepts("aab"))
	require.False(t, inter.Accepts("ba"))
	require.False(t, inter.Accepts("aa"))

	diff := startsA.Automaton.Difference(endsB.Automaton)
	require.True(t, diff.Accepts("aa"))
	require.False(t, diff.Accepts("ab"))
}
