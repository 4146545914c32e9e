package automata

import (
	"context"
	"fmt"
	"strings"
)

// expandWildcard pre-expands every '.' in s into "(c1+c2+...)" over
// alphabet's symbols, per SPEC_FULL.md §4.9/§6: "." is concrete syntax
// sugar resolved before tokenization, never a token of its own.
func expandWildcard(s string, alphabet *Alphabet) string {
	symbols := alphabet.Symbols()
	if len(symbols) == 0 || !strings.ContainsRune(s, '.') {
		return s
	}
	parts := make([]string, len(symbols))
	for i, c := range symbols {
		parts[i] = string(c)
	}
	expansion := "(" + strings.Join(parts, "+") + ")"
	var b strings.Builder
	for _, r := range s {
		if r == '.' {
			b.WriteString(expansion)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parser is a hand-written recursive-descent parser over the flat token
// stream produced by tokenize, following the teacher's regexlib parser
// structure (prefix dispatch on the lookahead token, explicit scan calls)
// rather than a parser generator. The grammar, loosest binding first:
//
//	Sum     := Product ('+' Product)*
//	Product := Factor Factor*
//	Factor  := Atom '*'*
//	Atom    := symbol | '0' | 'E' | '1' | '(' Sum ')'
type parser struct {
	ctx      context.Context
	tokens   []token
	pos      int
	alphabet *Alphabet
}

// Parse parses s as a regular expression over the configured alphabet
// (default {a,b}) and returns its RegularExpression tree.
func Parse(s string, opts ...Option) (*RegularExpression, error) {
	return ParseContext(context.Background(), s, opts...)
}

// ParseContext is Parse with ctx checked at the start of every Sum
// production (the whole input and each parenthesized group), so a caller
// can bound the parser's recursion on adversarially deep input
// (SPEC_FULL.md §5: context.Context as a cancellation signal only).
func ParseContext(ctx context.Context, s string, opts ...Option) (*RegularExpression, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	toks, err := tokenize(expandWildcard(s, cfg.alphabet))
	if err != nil {
		return nil, err
	}
	p := &parser{ctx: ctx, tokens: toks, alphabet: cfg.alphabet}
	re, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.look().typ != tokEOF {
		return nil, fmt.Errorf("%w: trailing input after expression", ErrUnexpectedToken)
	}
	return re, nil
}

func (p *parser) look() token {
	if p.pos >= len(p.tokens) {
		return token{typ: tokEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) scan() { p.pos++ }

func (p *parser) parseSum() (*RegularExpression, error) {
	if err := p.ctx.Err(); err != nil {
		return nil, err
	}
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.look().typ == tokPlus {
		p.scan()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = Sum(left, right)
	}
	return left, nil
}

func startsFactor(t tokenType) bool {
	switch t {
	case tokSymbol, tokZero, tokEpsilon, tokLParen:
		return true
	default:
		return false
	}
}

func (p *parser) parseProduct() (*RegularExpression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for startsFactor(p.look().typ) {
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = Concat(left, right)
	}
	return left, nil
}

func (p *parser) parseFactor() (*RegularExpression, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.look().typ == tokStar {
		p.scan()
		atom = Star(atom)
	}
	return atom, nil
}

func (p *parser) parseAtom() (*RegularExpression, error) {
	tk := p.look()
	switch tk.typ {
	case tokSymbol:
		if !p.alphabet.Contains(tk.ch) {
			return nil, fmt.Errorf("%w: %q not in alphabet %q", ErrUnexpectedChar, tk.ch, p.alphabet.String())
		}
		p.scan()
		return Word(string(tk.ch), WithAlphabet(p.alphabet)), nil
	case tokZero:
		p.scan()
		return Empty(WithAlphabet(p.alphabet)), nil
	case tokEpsilon:
		p.scan()
		return Word("", WithAlphabet(p.alphabet)), nil
	case tokLParen:
		p.scan()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.look().typ != tokRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrUnmatchedParen)
		}
		p.scan()
		return inner, nil
	default:
		return nil, fmt.Errorf("%w: in atom position", ErrUnexpectedToken)
	}
}
