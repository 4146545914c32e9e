package automata

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar-generator-driven alternative to Parse (SPEC_FULL.md §4.9a):
// the same Sum/Product/Factor/Atom grammar as parser.go, but declared as
// participle struct tags instead of hand-written recursive descent,
// following the teacher's internal/interpreter grammar-via-struct-tags
// pattern. ParseGrammar and Parse must agree on every input (Testable
// Property 11); this tree exists only to be walked once into a
// RegularExpression, never retained.
type gSum struct {
	Left *gProduct   `parser:"@@"`
	Rest []*gProduct `parser:"('+' @@)*"`
}

type gProduct struct {
	Factors []*gFactor `parser:"@@+"`
}

type gFactor struct {
	Atom  *gAtom   `parser:"@@"`
	Stars []string `parser:"@'*'*"`
}

type gAtom struct {
	Symbol  *string `parser:"  @Symbol"`
	Zero    *string `parser:"| @Zero"`
	Epsilon *string `parser:"| @Epsilon"`
	Group   *gSum   `parser:"| '(' @@ ')'"`
}

var grammarLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},
	{Name: "Epsilon", Pattern: `E|1`},
	{Name: "Zero", Pattern: `0`},
	{Name: "Symbol", Pattern: `[a-zA-Z]`},
	{Name: "Punct", Pattern: `[+*()]`},
})

var grammarParser = participle.MustBuild[gSum](
	participle.Lexer(grammarLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseGrammar parses s as a regular expression over the configured
// alphabet (default {a,b}) using the participle-driven grammar, returning
// the same kind of RegularExpression tree as Parse.
func ParseGrammar(s string, opts ...Option) (*RegularExpression, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	tree, err := grammarParser.ParseString("", expandWildcard(s, cfg.alphabet))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedToken, err)
	}
	return tree.toRegex(cfg.alphabet)
}

func (g *gSum) toRegex(alphabet *Alphabet) (*RegularExpression, error) {
	left, err := g.Left.toRegex(alphabet)
	if err != nil {
		return nil, err
	}
	for _, r := range g.Rest {
		right, err := r.toRegex(alphabet)
		if err != nil {
			return nil, err
		}
		left = Sum(left, right)
	}
	return left, nil
}

func (g *gProduct) toRegex(alphabet *Alphabet) (*RegularExpression, error) {
	if len(g.Factors) == 0 {
		return nil, fmt.Errorf("%w: empty product", ErrUnexpectedToken)
	}
	left, err := g.Factors[0].toRegex(alphabet)
	if err != nil {
		return nil, err
	}
	for _, f := range g.Factors[1:] {
		right, err := f.toRegex(alphabet)
		if err != nil {
			return nil, err
		}
		left = Concat(left, right)
	}
	return left, nil
}

func (g *gFactor) toRegex(alphabet *Alphabet) (*RegularExpression, error) {
	atom, err := g.Atom.toRegex(alphabet)
	if err != nil {
		return nil, err
	}
	for range g.Stars {
		atom = Star(atom)
	}
	return atom, nil
}

func (g *gAtom) toRegex(alphabet *Alphabet) (*RegularExpression, error) {
	switch {
	case g.Symbol != nil:
		r := []rune(*g.Symbol)[0]
		if !alphabet.Contains(r) {
			return nil, fmt.Errorf("%w: %q not in alphabet %q", ErrUnexpectedChar, r, alphabet.String())
		}
		return Word(*g.Symbol, WithAlphabet(alphabet)), nil
	case g.Zero != nil:
		return Empty(WithAlphabet(alphabet)), nil
	case g.Epsilon != nil:
		return Word("", WithAlphabet(alphabet)), nil
	case g.Group != nil:
		return g.Group.toRegex(alphabet)
	default:
		return nil, fmt.Errorf("%w: empty atom", ErrUnexpectedToken)
	}
}
