package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestParseAndParseGrammarAgree(t *testing.T) {
	patterns := []string{
		"a",
		"a+b",
		"ab",
		"a*",
		"(ab)*",
		"a(a+b)*",
		"(a+b)*abb(a+b)*",
		"a(a+b)*+b(a+bb)*",
		"0+E",
		"1+a",
		"a.b",
	}
	for _, p := range patterns {
		want, err := automata.Parse(p)
		require.NoError(t, err, "pattern %q", p)
		got, err := automata.ParseGrammar(p)
		require.NoError(t, err, "pattern %q", p)
		require.True(t, want.Similar(got), "pattern %q", p)
	}
}

func TestParseGrammarRejectsUnknownChar(t *testing.T) {
	_, err := automata.ParseGrammar("c")
	require.Error(t, err)
}

func TestParseGrammarOneDenotesEpsilon(t *testing.T) {
	re, err := automata.ParseGrammar("1+a")
	require.NoError(t, err)
	require.True(t, re.Accepts(""))
	require.True(t, re.Accepts("a"))
}

func TestParseGrammarWildcardExpansion(t *testing.T) {
	re, err := automata.ParseGrammar("a.b")
	require.NoError(t, err)
	require.True(t, re.Accepts("aab"))
	require.True(t, re.Accepts("abb"))
	require.False(t, re.Accepts("ab"))
}
