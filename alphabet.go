package automata

import (
	"fmt"
	"math/rand"
	"strings"
)

// Alphabet is a finite ordered sequence of distinct single-character
// symbols. It is immutable after construction.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// DefaultAlphabetSymbols is the alphabet used when no other is configured:
// two symbols, 'a' and 'b', matching every golden example in SPEC_FULL.md.
const DefaultAlphabetSymbols = "ab"

// NewAlphabet builds an Alphabet from a string of distinct runes, preserving
// the order in which they appear. It rejects duplicates.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("automata: duplicate alphabet symbol %q", r)
		}
		index[r] = i
	}
	return &Alphabet{symbols: runes, index: index}, nil
}

// DefaultAlphabet returns the {a,b} alphabet used throughout the package
// when no explicit alphabet is configured.
func DefaultAlphabet() *Alphabet {
	a, _ := NewAlphabet(DefaultAlphabetSymbols)
	return a
}

// Symbols returns the alphabet's symbols in their declared order.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int { return len(a.symbols) }

// String renders the alphabet as its ordered symbol string, matching the
// Σ component of the canonical signature format.
func (a *Alphabet) String() string { return string(a.symbols) }

// Contains reports whether r is a symbol of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// IndexOf returns the declared-order position of r, or -1 if r is not a
// symbol of the alphabet.
func (a *Alphabet) IndexOf(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// Equal reports whether two alphabets have the same symbols in the same
// order.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a == nil || b == nil {
		return a == b
	}
	return string(a.symbols) == string(b.symbols)
}

// WordIterator yields words over an alphabet in length-lexicographic order:
// all words of length 0, then all words of length 1 in alphabet order, and
// so on. It is restartable and single-direction, per Design Note 9's
// guidance to model generator functions as iterator objects rather than
// unbounded lazy sequences.
type WordIterator struct {
	alphabet *Alphabet
	length   int
	digits   []int
	started  bool
}

// GenAllWords returns a fresh WordIterator over a.
func (a *Alphabet) GenAllWords() *WordIterator {
	return &WordIterator{alphabet: a}
}

// Next returns the next word in length-lexicographic order, or ("", false)
// if the alphabet is empty (no words can be generated beyond "" when the
// alphabet has zero symbols... the empty word is still produced once).
func (w *WordIterator) Next() (string, bool) {
	n := w.alphabet.Len()
	if !w.started {
		w.started = true
		w.length = 0
		w.digits = nil
		return "", true
	}
	if n == 0 {
		return "", false
	}
	// Odometer increment over w.digits; on carry-out, advance to the next
	// length and reset to all-zero digits.
	i := len(w.digits) - 1
	for i >= 0 {
		w.digits[i]++
		if w.digits[i] < n {
			break
		}
		w.digits[i] = 0
		i--
	}
	if i < 0 {
		w.length++
		w.digits = make([]int, w.length)
	}
	return w.alphabet.wordFromDigits(w.digits), true
}

func (a *Alphabet) wordFromDigits(digits []int) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteRune(a.symbols[d])
	}
	return b.String()
}

// RandomWord returns a word of length chosen uniformly from [minLen,maxLen]
// (inclusive), each symbol drawn independently and uniformly from the
// alphabet. RandomWord is a test/benchmark utility, not part of the
// matching core, per SPEC_FULL.md's Non-goals.
func (a *Alphabet) RandomWord(minLen, maxLen int) (string, error) {
	if minLen < 0 || maxLen < 0 {
		return "", ErrNegativeLength
	}
	if maxLen < minLen {
		return "", fmt.Errorf("automata: maxLen %d < minLen %d", maxLen, minLen)
	}
	n := a.Len()
	if n == 0 {
		if maxLen == 0 {
			return "", nil
		}
		return "", fmt.Errorf("automata: cannot generate non-empty word from empty alphabet")
	}
	length := minLen
	if maxLen > minLen {
		length += rand.Intn(maxLen - minLen + 1)
	}
	b := make([]rune, length)
	for i := range b {
		b[i] = a.symbols[rand.Intn(n)]
	}
	return string(b), nil
}
