package automata_test

import (
	"context"
	"testing"

	"automata"
	"github.com/stretchr/testify/require"
)

func TestParseGoldenExamples(t *testing.T) {
	re, err := automata.Parse("a(a+b)*+b(a+bb)*")
	require.NoError(t, err)
	require.True(t, re.Accepts("aa"))
	require.False(t, re.Accepts("bab"))
}

func TestParseUnmatchedParen(t *testing.T) {
	_, err := automata.Parse("(a+b")
	require.ErrorIs(t, err, automata.ErrUnmatchedParen)
}

func TestParseUnexpectedChar(t *testing.T) {
	_, err := automata.Parse("c")
	require.ErrorIs(t, err, automata.ErrUnexpectedChar)
}

func TestParseTrailingInput(t *testing.T) {
	_, err := automata.Parse("a)")
	require.ErrorIs(t, err, automata.ErrUnexpectedToken)
}

func TestParseEmptyAndZero(t *testing.T) {
	re, err := automata.Parse("0+E")
	require.NoError(t, err)
	require.True(t, re.Accepts(""))
	require.False(t, re.Accepts("a"))
}

func TestParseOneDenotesEpsilon(t *testing.T) {
	re, err := automata.Parse("1+a")
	require.NoError(t, err)
	require.True(t, re.Accepts(""))
	require.True(t, re.Accepts("a"))
	require.False(t, re.Accepts("b"))
}

func TestParseWildcardExpansion(t *testing.T) {
	re, err := automata.Parse("a.b")
	require.NoError(t, err)
	require.True(t, re.Accepts("aab"))
	require.True(t, re.Accepts("abb"))
	require.False(t, re.Accepts("ab"))
	require.False(t, re.Accepts("acb"))

	sub, err := automata.Parse("a(a+b)b")
	require.NoError(t, err)
	require.True(t, re.Similar(sub))
}

func TestParseContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := automata.ParseContext(ctx, "a+b")
	require.ErrorIs(t, err, context.Canceled)
}
