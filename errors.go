package automata

import "errors"

// Sentinel errors for the taxonomy described in SPEC_FULL.md §7. Callers
// should match against these with errors.Is rather than string-comparing
// messages.
var (
	// ErrNegativeLength is returned by length-taking operations (Sample
	// constructors, word generators) given a negative length.
	ErrNegativeLength = errors.New("automata: negative length")

	// ErrNonPositiveCount is returned by constructors that require a
	// strictly positive count, such as Sample.ModLength's modulus.
	ErrNonPositiveCount = errors.New("automata: count must be positive")

	// ErrPermutationLength is returned by RenameStates when the supplied
	// permutation's length differs from the automaton's state count.
	ErrPermutationLength = errors.New("automata: permutation length mismatch")

	// ErrUnexpectedChar is a regex-parser syntax error: a literal character
	// that is not a symbol of the configured alphabet, or one the lexer
	// could not classify into any token.
	ErrUnexpectedChar = errors.New("automata: unexpected character")

	// ErrUnmatchedParen is a regex-parser syntax error: an opening or
	// closing parenthesis with no matching counterpart.
	ErrUnmatchedParen = errors.New("automata: unmatched parenthesis")

	// ErrUnexpectedToken is a regex-parser syntax error: a token valid in
	// the grammar but not in the position it appeared.
	ErrUnexpectedToken = errors.New("automata: unexpected token")

	// ErrMalformedSignature is returned by ConstructFromSignature when its
	// input does not parse as a well-formed T|F|Σ signature.
	ErrMalformedSignature = errors.New("automata: malformed signature")

	// ErrNoStartState is returned by operations that require exactly one
	// start state (DFS renaming, signature computation) when the
	// automaton has none.
	ErrNoStartState = errors.New("automata: automaton has no start state")
)
