package automata

import "fmt"

// reKind discriminates the variants of a RegularExpression (SPEC_FULL.md
// §3, "A discriminated tree").
type reKind int

const (
	reEmpty reKind = iota
	reWord
	reStar
	reSum
	reConcat
)

// RegularExpression is an immutable sum-of-variants tree: Empty (language
// ∅), Word(w) (a single literal, possibly the empty word), Star, Sum, and
// Concat. Every node caches an equivalent automaton computed at
// construction time; for Star/Sum/Concat the cache is minimized and
// DFS-renamed.
type RegularExpression struct {
	kind     reKind
	word     string
	left     *RegularExpression
	right    *RegularExpression
	eqAut    *Automaton
	alphabet *Alphabet
}

// Empty returns the regex denoting the empty language ∅.
func Empty(opts ...Option) *RegularExpression {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &RegularExpression{
		kind:     reEmpty,
		eqAut:    NewAutomaton(WithAlphabet(cfg.alphabet), WithName("0")),
		alphabet: cfg.alphabet,
	}
}

// Word returns the regex denoting the single-word language {w}. The empty
// string denotes the epsilon language {ε}.
func Word(w string, opts ...Option) *RegularExpression {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &RegularExpression{
		kind:     reWord,
		word:     w,
		eqAut:    buildWordAutomaton(cfg.alphabet, w),
		alphabet: cfg.alphabet,
	}
}

func buildWordAutomaton(alphabet *Alphabet, w string) *Automaton {
	a := NewAutomaton(WithAlphabet(alphabet), WithName(fmt.Sprintf("word(%q)", w)))
	runes := []rune(w)
	if len(runes) == 0 {
		a.AddState("q0", true, true, nil, false)
		return a
	}
	prev := a.AddState("q0", true, false, nil, false)
	for i, c := range runes {
		final := i == len(runes)-1
		next := a.AddState(fmt.Sprintf("q%d", i+1), false, final, nil, false)
		a.AddEdge(prev, next, c)
		prev = next
	}
	return a
}

// finalizeEqAut minimizes and DFS-renames a compound regex node's
// candidate equivalent automaton, per SPEC_FULL.md §4.8.
func finalizeEqAut(a *Automaton) *Automaton {
	min := a.Minimize(MinimizeHopcroft)
	renamed, err := min.RenameStatesDFS()
	if err != nil {
		return min
	}
	return renamed
}

// Star returns the regex for r's Kleene star.
func Star(r *RegularExpression) *RegularExpression {
	return &RegularExpression{
		kind:     reStar,
		left:     r,
		eqAut:    finalizeEqAut(r.eqAut.Star()),
		alphabet: r.alphabet,
	}
}

// Sum returns the regex for the union of r1 and r2's languages.
func Sum(r1, r2 *RegularExpression) *RegularExpression {
	return &RegularExpression{
		kind:     reSum,
		left:     r1,
		right:    r2,
		eqAut:    finalizeEqAut(r1.eqAut.Union(r2.eqAut)),
		alphabet: r1.alphabet,
	}
}

// Concat returns the regex for the concatenation of r1 and r2's languages.
// Concatenation with the epsilon word (Word("")) is an algebraic identity
// and returns the other operand unchanged, without building a new cached
// automaton.
func Concat(r1, r2 *RegularExpression) *RegularExpression {
	if r1.kind == reWord && r1.word == "" {
		return r2
	}
	if r2.kind == reWord && r2.word == "" {
		return r1
	}
	return &RegularExpression{
		kind:     reConcat,
		left:     r1,
		right:    r2,
		eqAut:    finalizeEqAut(r1.eqAut.Concat(r2.eqAut)),
		alphabet: r1.alphabet,
	}
}

// EquivalentAutomaton returns a freshly owned copy of r's cached
// equivalent automaton.
func (r *RegularExpression) EquivalentAutomaton() *Automaton {
	return r.eqAut.Copy()
}

// Accepts reports whether w is in r's language.
func (r *RegularExpression) Accepts(w string) bool {
	return r.eqAut.Accepts(w)
}

// Similar reports whether r and other denote the same language: their
// cached automata are Equivalent.
func (r *RegularExpression) Similar(other *RegularExpression) bool {
	return Equivalent(r.eqAut, other.eqAut)
}

// String renders r in the concrete syntax of SPEC_FULL.md §4.8 / §6: "0"
// for the empty language, "E" for the epsilon word, literals for
// non-empty words, "x*" for a starred single symbol, "(r)*" for a starred
// compound, infix "+" for sum, and juxtaposition for concatenation —
// parenthesizing a concat operand only when it is itself a sum.
func (r *RegularExpression) String() string {
	switch r.kind {
	case reEmpty:
		return "0"
	case reWord:
		if r.word == "" {
			return "E"
		}
		return r.word
	case reStar:
		if r.left.kind == reWord && len([]rune(r.left.word)) == 1 {
			return r.left.word + "*"
		}
		return "(" + r.left.String() + ")*"
	case reSum:
		return r.left.String() + "+" + r.right.String()
	case reConcat:
		return concatOperandString(r.left) + concatOperandString(r.right)
	default:
		return ""
	}
}

func concatOperandString(r *RegularExpression) string {
	s := r.String()
	if r.kind == reSum {
		return "(" + s + ")"
	}
	return s
}
