package automata

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tokenType enumerates the lexical categories of the regex surface syntax
// (SPEC_FULL.md §4.9): literals (including the reserved "0" atom and the
// "E"/"1" epsilon spellings), the two binary/unary operators, and
// parentheses. The wildcard "." is not a token: expandWildcard rewrites
// it into "(c1+c2+...)" over the configured alphabet before the input
// ever reaches this lexer.
type tokenType int

const (
	tokEOF tokenType = iota
	tokSymbol
	tokZero
	tokEpsilon
	tokPlus
	tokStar
	tokLParen
	tokRParen
)

type token struct {
	typ tokenType
	ch  rune
}

// buildLexer compiles a lexmachine scanner recognizing the fixed
// punctuation of the grammar plus a catch-all single-rune literal rule,
// mirroring the teacher's drone-DSL lexer (LAB_3_Drone/lexer) construction
// pattern: one lexmachine.Lexer, one Add call per token class, Compile,
// then Scanner per input. Specific single-character rules are added before
// the catch-all so lexmachine's first-match-wins tie-breaking on equal
// match length picks them over the generic literal.
func buildLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`[ \t\n\r]+`), skipToken)
	lex.Add([]byte(`[+]`), tokAction(tokPlus))
	lex.Add([]byte(`[*]`), tokAction(tokStar))
	lex.Add([]byte(`[(]`), tokAction(tokLParen))
	lex.Add([]byte(`[)]`), tokAction(tokRParen))
	lex.Add([]byte(`0`), tokAction(tokZero))
	lex.Add([]byte(`E`), tokAction(tokEpsilon))
	lex.Add([]byte(`1`), tokAction(tokEpsilon))
	lex.Add([]byte(`.`), literalAction)
	if err := lex.Compile(); err != nil {
		return nil, err
	}
	return lex, nil
}

func skipToken(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return token{typ: typ}, nil
	}
}

func literalAction(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	r := []rune(string(m.Bytes))[0]
	return token{typ: tokSymbol, ch: r}, nil
}

// tokenize scans s into a flat token slice terminated by tokEOF, using the
// shared lexmachine lexer. A byte lexmachine cannot classify surfaces as
// ErrUnexpectedChar.
func tokenize(s string) ([]token, error) {
	lex, err := buildLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lex.Scanner([]byte(s))
	if err != nil {
		return nil, err
	}
	var out []token
	for {
		tk, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedChar, err)
		}
		out = append(out, tk.(token))
	}
	out = append(out, token{typ: tokEOF})
	return out, nil
}
