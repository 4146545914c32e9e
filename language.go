package automata

// AcceptedWordIterator enumerates the words accepted by an Automaton, in
// length-lexicographic order, up to and including a maximum length. It
// addresses SPEC_FULL.md §9's Open Question (b): an explicit iterator
// object rather than materializing the (potentially infinite) language.
type AcceptedWordIterator struct {
	automaton *Automaton
	words     *WordIterator
	maxLength int
}

// AcceptedWords returns an iterator over a's accepted words of length at
// most maxLength. maxLength must be non-negative.
func (a *Automaton) AcceptedWords(maxLength int) (*AcceptedWordIterator, error) {
	if maxLength < 0 {
		return nil, ErrNegativeLength
	}
	return &AcceptedWordIterator{automaton: a, words: a.alphabet.GenAllWords(), maxLength: maxLength}, nil
}

// Next returns the next accepted word, or ("", false) once every word of
// length at most maxLength has been produced.
func (it *AcceptedWordIterator) Next() (string, bool) {
	for {
		w, ok := it.words.Next()
		if !ok {
			return "", false
		}
		if len(w) > it.maxLength {
			return "", false
		}
		if it.automaton.Accepts(w) {
			return w, true
		}
	}
}

// FirstAcceptedWord returns the length-lexicographically first word a
// accepts that is no longer than maxLength, and whether one exists.
func (a *Automaton) FirstAcceptedWord(maxLength int) (string, bool, error) {
	it, err := a.AcceptedWords(maxLength)
	if err != nil {
		return "", false, err
	}
	w, ok := it.Next()
	return w, ok, nil
}
