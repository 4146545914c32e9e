package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestExtIntersectMatchesBothOperands(t *testing.T) {
	r1, err := automata.Parse("a(a+b)*")
	require.NoError(t, err)
	r2, err := automata.Parse("(a+b)*a")
	require.NoError(t, err)

	inter := automata.Ext.Intersect(r1, r2)
	words := []string{"", "a", "aa", "ab", "ba", "aba", "bab", "aab"}
	for _, w := range words {
		want := r1.Accepts(w) && r2.Accepts(w)
		require.Equal(t, want, inter.Accepts(w), "word %q", w)
	}
}

func TestExtIntersectGoldenExample(t *testing.T) {
	r1, err := automata.Parse("a(a+b)*")
	require.NoError(t, err)
	r2, err := automata.Parse("(a+b)*a")
	require.NoError(t, err)
	want, err := automata.Parse("a+a(a+b)*a")
	require.NoError(t, err)

	inter := automata.Ext.Intersect(r1, r2)
	require.True(t, automata.Equivalent(inter.EquivalentAutomaton(), want.EquivalentAutomaton()))
}

func TestExtComplementAndRoundTrip(t *testing.T) {
	r, err := automata.Parse("ab")
	require.NoError(t, err)
	comp := automata.Ext.Complement(r)
	require.False(t, comp.Accepts("ab"))
	require.True(t, comp.Accepts("a"))

	back := comp.ToRegularExpression()
	require.True(t, automata.Equivalent(back.EquivalentAutomaton(), comp.EquivalentAutomaton()))
}
