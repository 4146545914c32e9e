package automata

import (
	"fmt"
	"sort"
	"strings"
)

const base62Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// toBase62 renders a non-negative integer in base 62 using digits
// 0-9A-Za-z, with no leading zero padding.
func toBase62(k int) string {
	if k < 0 {
		panic("automata: toBase62 of negative integer")
	}
	if k == 0 {
		return "0"
	}
	var b []byte
	for k > 0 {
		b = append(b, base62Digits[k%62])
		k /= 62
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// fromBase62 parses a base-62 string of digits 0-9A-Za-z.
func fromBase62(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("automata: empty base62 digit string")
	}
	n := 0
	for _, r := range s {
		idx := strings.IndexRune(base62Digits, r)
		if idx < 0 {
			return 0, fmt.Errorf("automata: invalid base62 digit %q", r)
		}
		n = n*62 + idx
	}
	return n, nil
}

// toBase62Width renders k in base 62, left-padded with '0' to width digits.
func toBase62Width(k, width int) string {
	s := toBase62(k)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// digitWidth returns ceil(log62(n)) + 1, the fixed per-state digit width
// used by the canonical signature format (SPEC_FULL.md §6).
func digitWidth(n int) int {
	if n <= 1 {
		return 1
	}
	width := 0
	temp := 1
	for temp < n {
		temp *= 62
		width++
	}
	return width + 1
}

// edgesFrom returns s's out-edges ordered by ascending symbol, then
// ascending sink id, matching the "out-edges in ascending symbol order"
// requirement of DFS renaming (SPEC_FULL.md §4.5).
func (a *Automaton) edgesFrom(s *State) []*Edge {
	out := make([]*Edge, 0, s.edgesOut.Count())
	for i, ok := s.edgesOut.NextSet(0); ok; i, ok = s.edgesOut.NextSet(i + 1) {
		if e := a.edgeByID(int(i)); e != nil {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].symbol != out[j].symbol {
			return out[i].symbol < out[j].symbol
		}
		return out[i].sink < out[j].sink
	})
	return out
}

// dfsOrder returns a's states in depth-first visit order starting at its
// (unique) start state, following out-edges in ascending symbol order.
// States unreachable from the start state, if any, are appended afterward
// in ascending id order so that RenameStatesDFS never drops a state.
func (a *Automaton) dfsOrder() ([]*State, error) {
	starts := a.StartStates()
	if starts.IsEmpty() {
		return nil, ErrNoStartState
	}
	start := starts.States()[0]

	var order []*State
	visited := make(map[int]bool)
	var visit func(s *State)
	visit = func(s *State) {
		if visited[s.id] {
			return
		}
		visited[s.id] = true
		order = append(order, s)
		for _, e := range a.edgesFrom(s) {
			if next := a.stateByID(e.sink); next != nil {
				visit(next)
			}
		}
	}
	visit(start)

	for _, s := range a.States() {
		if !visited[s.id] {
			visit(s)
		}
	}
	return order, nil
}

// RenameStatesDFS returns a freshly owned automaton numbered by depth-first
// visit order from the unique start state: the n-th visited state is
// renamed to the n-th fixed-width Base62 string (SPEC_FULL.md §4.5).
func (a *Automaton) RenameStatesDFS() (*Automaton, error) {
	order, err := a.dfsOrder()
	if err != nil {
		return nil, err
	}
	width := digitWidth(len(order))

	out := NewAutomaton(WithName(a.name), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	idMap := make(map[int]*State, len(order))
	for i, s := range order {
		idMap[s.id] = out.AddState(toBase62Width(i, width), s.start, s.final, s.tag, false)
	}
	for _, e := range a.Edges() {
		out.AddEdge(idMap[e.source], idMap[e.sink], e.symbol)
	}
	return out, nil
}

// NumberStatesDFS returns, for each state id of a, its 0-based position in
// depth-first visit order from the unique start state. It is the
// non-mutating counterpart to RenameStatesDFS, used by SignatureNumberedDFS
// to compute the same canonical signature without rebuilding the graph.
func (a *Automaton) NumberStatesDFS() (map[int]int, error) {
	order, err := a.dfsOrder()
	if err != nil {
		return nil, err
	}
	numbering := make(map[int]int, len(order))
	for i, s := range order {
		numbering[s.id] = i
	}
	return numbering, nil
}

// RenameStates returns a freshly owned automaton whose i-th state (in
// ascending id order) is renamed according to permutation[i]: the new name
// is the Base62 encoding of permutation[i]. It is used by the isomorphism
// property tests (SPEC_FULL.md §8, item 9) and requires len(permutation)
// to equal the automaton's state count.
func (a *Automaton) RenameStates(permutation []int) (*Automaton, error) {
	states := a.States()
	if len(permutation) != len(states) {
		return nil, ErrPermutationLength
	}
	width := digitWidth(len(states))
	out := NewAutomaton(WithName(a.name), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	idMap := make(map[int]*State, len(states))
	for i, s := range states {
		idMap[s.id] = out.AddState(toBase62Width(permutation[i], width), s.start, s.final, s.tag, true)
	}
	for _, e := range a.Edges() {
		out.AddEdge(idMap[e.source], idMap[e.sink], e.symbol)
	}
	return out, nil
}

// SignatureDFS returns the canonical "T|F|Σ" textual signature of a,
// defined only for deterministic automata (SPEC_FULL.md §4.5, §6).
func (a *Automaton) SignatureDFS() (string, error) {
	renamed, err := a.RenameStatesDFS()
	if err != nil {
		return "", err
	}
	states := renamed.States()
	var t strings.Builder
	for _, s := range states {
		for _, c := range renamed.alphabet.Symbols() {
			succ := renamed.Delta(s, c)
			if succ.IsEmpty() {
				t.WriteByte('-')
				continue
			}
			t.WriteString(succ.States()[0].name)
		}
	}
	var f strings.Builder
	for _, s := range states {
		if s.final {
			f.WriteByte('1')
		} else {
			f.WriteByte('0')
		}
	}
	return t.String() + "|" + f.String() + "|" + renamed.alphabet.String(), nil
}

// SignatureNumberedDFS computes the same signature as SignatureDFS, but via
// NumberStatesDFS's numbering table rather than by rebuilding a renamed
// automaton. SPEC_FULL.md §8, item 4 requires the two to agree byte for
// byte on any deterministic automaton.
func (a *Automaton) SignatureNumberedDFS() (string, error) {
	numbering, err := a.NumberStatesDFS()
	if err != nil {
		return "", err
	}
	n := len(numbering)
	width := digitWidth(n)
	ordered := make([]*State, n)
	for _, s := range a.States() {
		ordered[numbering[s.id]] = s
	}
	var t strings.Builder
	for _, s := range ordered {
		for _, c := range a.alphabet.Symbols() {
			succ := a.Delta(s, c)
			if succ.IsEmpty() {
				t.WriteByte('-')
				continue
			}
			succID := succ.States()[0].id
			t.WriteString(toBase62Width(numbering[succID], width))
		}
	}
	var f strings.Builder
	for _, s := range ordered {
		if s.final {
			f.WriteByte('1')
		} else {
			f.WriteByte('0')
		}
	}
	return t.String() + "|" + f.String() + "|" + a.alphabet.String(), nil
}

// ConstructFromSignature parses a "T|F|Σ" signature (as produced by
// SignatureDFS) and rebuilds the automaton it describes.
func ConstructFromSignature(sig string, opts ...Option) (*Automaton, error) {
	parts := strings.Split(sig, "|")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 '|'-separated parts, got %d", ErrMalformedSignature, len(parts))
	}
	t, f, sigma := parts[0], parts[1], parts[2]
	if t == "" || f == "" || sigma == "" {
		return nil, fmt.Errorf("%w: empty part", ErrMalformedSignature)
	}
	alphabet, err := NewAlphabet(sigma)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}

	n := len(f)
	width := digitWidth(n)

	type pendingEdge struct {
		from, to int
		symbol   rune
	}
	var pending []pendingEdge

	pos := 0
	symbols := alphabet.Symbols()
	for i := 0; i < n; i++ {
		for _, c := range symbols {
			if pos >= len(t) {
				return nil, fmt.Errorf("%w: transition table too short", ErrMalformedSignature)
			}
			if t[pos] == '-' {
				pos++
				continue
			}
			if pos+width > len(t) {
				return nil, fmt.Errorf("%w: transition table truncated", ErrMalformedSignature)
			}
			chunk := t[pos : pos+width]
			pos += width
			target, err := fromBase62(chunk)
			if err != nil || target < 0 || target >= n {
				return nil, fmt.Errorf("%w: malformed transition digits %q", ErrMalformedSignature, chunk)
			}
			pending = append(pending, pendingEdge{from: i, to: target, symbol: c})
		}
	}
	if pos != len(t) {
		return nil, fmt.Errorf("%w: transition table has trailing data", ErrMalformedSignature)
	}

	opts = append(opts, WithAlphabet(alphabet))
	out := NewAutomaton(opts...)
	states := make([]*State, n)
	for i := 0; i < n; i++ {
		final := f[i] == '1'
		states[i] = out.AddState(toBase62Width(i, width), i == 0, final, nil, false)
	}
	for _, pe := range pending {
		out.AddEdge(states[pe.from], states[pe.to], pe.symbol)
	}
	return out, nil
}

// Equivalent reports whether a and b accept the same language, by
// minimizing both and comparing canonical signatures.
func Equivalent(a, b *Automaton) bool {
	sigA, errA := a.Minimize(MinimizeHopcroft).SignatureDFS()
	if errA != nil {
		return false
	}
	sigB, errB := b.Minimize(MinimizeHopcroft).SignatureDFS()
	if errB != nil {
		return false
	}
	return sigA == sigB
}
