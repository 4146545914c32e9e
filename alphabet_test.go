package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestAlphabetGenAllWords(t *testing.T) {
	ab, err := automata.NewAlphabet("ab")
	require.NoError(t, err)

	it := ab.GenAllWords()
	want := []string{"", "a", "b", "aa", "ab", "ba", "bb", "aaa", "aab", "aba", "abb", "baa", "bab", "bba", "bbb"}
	for i, w := range want {
		got, ok := it.Next()
		require.True(t, ok, "word %d", i)
		require.Equal(t, w, got, "word %d", i)
	}
}

func TestAlphabetRandomWordFixedLength(t *testing.T) {
	ab := automata.DefaultAlphabet()
	w, err := ab.RandomWord(60, 60)
	require.NoError(t, err)
	require.Len(t, []rune(w), 60)
	for _, r := range w {
		require.True(t, ab.Contains(r))
	}
}

func TestAlphabetRandomWordNegativeLength(t *testing.T) {
	ab := automata.DefaultAlphabet()
	_, err := ab.RandomWord(-1, 5)
	require.ErrorIs(t, err, automata.ErrNegativeLength)
}

func TestAlphabetDuplicateSymbol(t *testing.T) {
	_, err := automata.NewAlphabet("aba")
	require.Error(t, err)
}
