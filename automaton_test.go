package automata_test

import (
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func buildEndsWithAB(t *testing.T) *automata.Automaton {
	t.Helper()
	res, err := automata.Sample.EndsWith("ab")
	require.NoError(t, err)
	return res.Automaton
}

func TestAutomatonAcceptsBasic(t *testing.T) {
	a := buildEndsWithAB(t)
	require.True(t, a.Accepts("ab"))
	require.True(t, a.Accepts("aab"))
	require.True(t, a.Accepts("bab"))
	require.False(t, a.Accepts("a"))
	require.False(t, a.Accepts("ba"))
	require.False(t, a.Accepts(""))
}

func TestAutomatonAddStateEmptyNameRewritten(t *testing.T) {
	a := automata.NewAutomaton()
	s := a.AddState("", true, true, nil, false)
	require.Equal(t, "empty", s.Name())
}

func TestAutomatonAddStateDedup(t *testing.T) {
	a := automata.NewAutomaton()
	s1 := a.AddState("q0", true, false, nil, false)
	s2 := a.AddState("q0", false, true, nil, false)
	require.Equal(t, s1.ID(), s2.ID())
}

func TestAutomatonDeleteStateRemovesIncidentEdges(t *testing.T) {
	a := automata.NewAutomaton()
	q0 := a.AddState("q0", true, false, nil, false)
	q1 := a.AddState("q1", false, true, nil, false)
	a.AddEdge(q0, q1, 'a')
	require.Equal(t, 1, a.NumEdges())
	a.DeleteState(q1)
	require.Equal(t, 0, a.NumEdges())
	require.Equal(t, 1, a.NumStates())
}

func TestAutomatonIsDeterministic(t *testing.T) {
	det := automata.NewAutomaton()
	q0 := det.AddState("q0", true, true, nil, false)
	q1 := det.AddState("q1", false, false, nil, false)
	det.AddEdge(q0, q1, 'a')
	require.True(t, det.IsDeterministic())

	nondet := automata.NewAutomaton()
	p0 := nondet.AddState("p0", true, false, nil, false)
	p1 := nondet.AddState("p1", false, true, nil, false)
	p2 := nondet.AddState("p2", false, true, nil, false)
	nondet.AddEdge(p0, p1, 'a')
	nondet.AddEdge(p0, p2, 'a')
	require.False(t, nondet.IsDeterministic())
}

func TestAutomatonCopyIsIndependent(t *testing.T) {
	a := buildEndsWithAB(t)
	b := a.Copy()
	require.True(t, automata.Equivalent(a, b))
	require.NotSame(t, a, b)
}

func TestAcceptedWordsIterator(t *testing.T) {
	a := buildEndsWithAB(t)
	it, err := a.AcceptedWords(4)
	require.NoError(t, err)
	var words []string
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		words = append(words, w)
	}
	require.Contains(t, words, "ab")
	require.Contains(t, words, "aab")
	require.Contains(t, words, "bab")
	for _, w := range words {
		require.LessOrEqual(t, len(w), 4)
		require.True(t, a.Accepts(w))
	}
}

func TestFirstAcceptedWord(t *testing.T) {
	a := buildEndsWithAB(t)
	w, ok, err := a.FirstAcceptedWord(10)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, a.Accepts(w))
}

func TestFirstAcceptedWordNegativeLength(t *testing.T) {
	a := buildEndsWithAB(t)
	_, _, err := a.FirstAcceptedWord(-1)
	require.ErrorIs(t, err, automata.ErrNegativeLength)
}
