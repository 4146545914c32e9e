package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestSampleNumberOfSymbols(t *testing.T) {
	res, err := automata.Sample.NumberOfSymbols('a', 2)
	require.NoError(t, err)
	words := []string{"", "a", "aa", "aaa", "aba", "bab", "baab"}
	for _, w := range words {
		require.Equal(t, res.InLanguage(w), res.Automaton.Accepts(w), "word %q", w)
	}
	_, err = automata.Sample.NumberOfSymbols('a', -1)
	require.ErrorIs(t, err, automata.ErrNegativeLength)
}

func TestSampleModLength(t *testing.T) {
	res, err := automata.Sample.ModLength(3, 1)
	require.NoError(t, err)
	words := []string{"", "a", "ab", "aab", "aaaa", "ababab"}
	for _, w := range words {
		require.Equal(t, res.InLanguage(w), res.Automaton.Accepts(w), "word %q", w)
	}
	_, err = automata.Sample.ModLength(0, 1)
	require.ErrorIs(t, err, automata.ErrNonPositiveCount)
}

func TestSampleOnlyWordAndEmptyWord(t *testing.T) {
	w, err := automata.Sample.OnlyWord("ab")
	require.NoError(t, err)
	require.True(t, w.Automaton.Accepts("ab"))
	require.False(t, w.Automaton.Accepts("a"))

	eps, err := automata.Sample.OnlyEmptyWord()
	require.NoError(t, err)
	require.True(t, eps.Automaton.Accepts(""))
	require.False(t, eps.Automaton.Accepts("a"))
}

func TestSampleAllWordsAndNoWords(t *testing.T) {
	all, err := automata.Sample.AllWords()
	require.NoError(t, err)
	require.True(t, all.Automaton.Accepts(""))
	require.True(t, all.Automaton.Accepts("abba"))

	none, err := automata.Sample.NoWords()
	require.NoError(t, err)
	require.False(t, none.Automaton.Accepts(""))
	require.False(t, none.Automaton.Accepts("a"))
}

func TestSampleLengthRangeAndMinMax(t *testing.T) {
	rng, err := automata.Sample.LengthRange(2, 4)
	require.NoError(t, err)
	require.False(t, rng.Automaton.Accepts("a"))
	require.True(t, rng.Automaton.Accepts("aa"))
	require.True(t, rng.Automaton.Accepts("aaaa"))
	require.False(t, rng.Automaton.Accepts("aaaaa"))
	_, err = automata.Sample.LengthRange(4, 2)
	require.Error(t, err)

	min, err := automata.Sample.MinLength(2)
	require.NoError(t, err)
	require.False(t, min.Automaton.Accepts("a"))
	require.True(t, min.Automaton.Accepts("aaaaaa"))

	max, err := automata.Sample.MaxLength(2)
	require.NoError(t, err)
	require.True(t, max.Automaton.Accepts(""))
	require.True(t, max.Automaton.Accepts("aa"))
	require.False(t, max.Automaton.Accepts("aaa"))
}

func TestSampleNotReachable(t *testing.T) {
	res, err := automata.Sample.NotReachable(3)
	require.NoError(t, err)
	require.Equal(t, 4, res.Automaton.NumStates())
	require.True(t, res.Automaton.Accepts(""))
	require.True(t, res.Automaton.Accepts("ab"))
}

func TestSampleMinimize1Collapses(t *testing.T) {
	res, err := automata.Sample.Minimize1()
	require.NoError(t, err)
	min := res.Automaton.Minimize(automata.MinimizeHopcroft)
	require.Equal(t, 2, min.NumStates())
	require.True(t, min.Accepts(""))
	require.False(t, min.Accepts("a"))
	require.True(t, min.Accepts("aa"))
}
