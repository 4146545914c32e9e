package automata

import (
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// Automaton is a non-deterministic (or deterministic) finite automaton over
// a finite Alphabet. States and edges are owned exclusively by their
// automaton — arena slices addressed by integer id, per Design Note 9.1 —
// and never shared with another Automaton; operations that combine two
// automata always copy into a freshly owned graph.
type Automaton struct {
	name     string
	alphabet *Alphabet

	states     []*State
	stateAlive *bitset.BitSet
	nameToID   map[string]int

	edges     []*Edge
	edgeAlive *bitset.BitSet

	// delta is the symbol-indexed two-level transition index: symbol →
	// source state id → set of sink state ids.
	delta map[rune]map[int]*bitset.BitSet

	logger    *slog.Logger
	workLimit int
}

// NewAutomaton returns an empty automaton, ready to have states and edges
// added to it.
func NewAutomaton(opts ...Option) *Automaton {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	a := &Automaton{
		name:       cfg.name,
		alphabet:   cfg.alphabet,
		stateAlive: bitset.New(0),
		nameToID:   make(map[string]int),
		edgeAlive:  bitset.New(0),
		delta:      make(map[rune]map[int]*bitset.BitSet),
		logger:     cfg.logger,
		workLimit:  cfg.workLimit,
	}
	return a
}

// Name returns the automaton's display name.
func (a *Automaton) Name() string { return a.name }

// SetName overwrites the automaton's display name.
func (a *Automaton) SetName(name string) { a.name = name }

// Alphabet returns the automaton's alphabet.
func (a *Automaton) Alphabet() *Alphabet { return a.alphabet }

// NumStates returns the number of live states.
func (a *Automaton) NumStates() int { return int(a.stateAlive.Count()) }

// NumEdges returns the number of live edges.
func (a *Automaton) NumEdges() int { return int(a.edgeAlive.Count()) }

func (a *Automaton) stateByID(id int) *State {
	if id < 0 || id >= len(a.states) || !a.stateAlive.Test(uint(id)) {
		return nil
	}
	return a.states[id]
}

func (a *Automaton) edgeByID(id int) *Edge {
	if id < 0 || id >= len(a.edges) || !a.edgeAlive.Test(uint(id)) {
		return nil
	}
	return a.edges[id]
}

// States returns the automaton's live states in ascending id order.
func (a *Automaton) States() []*State {
	out := make([]*State, 0, a.NumStates())
	for i, ok := a.stateAlive.NextSet(0); ok; i, ok = a.stateAlive.NextSet(i + 1) {
		out = append(out, a.states[i])
	}
	return out
}

// Edges returns the automaton's live edges in ascending id order.
func (a *Automaton) Edges() []*Edge {
	out := make([]*Edge, 0, a.NumEdges())
	for i, ok := a.edgeAlive.NextSet(0); ok; i, ok = a.edgeAlive.NextSet(i + 1) {
		out = append(out, a.edges[i])
	}
	return out
}

// StateByName looks up a state by its unique name.
func (a *Automaton) StateByName(name string) (*State, bool) {
	id, ok := a.nameToID[name]
	if !ok {
		return nil, false
	}
	return a.stateByID(id), true
}

// StartStates returns the set of all start states.
func (a *Automaton) StartStates() *StateSet {
	s := newStateSet(a)
	for _, st := range a.States() {
		if st.start {
			s.Add(st.id)
		}
	}
	return s
}

// FinalStates returns the set of all final states.
func (a *Automaton) FinalStates() *StateSet {
	s := newStateSet(a)
	for _, st := range a.States() {
		if st.final {
			s.Add(st.id)
		}
	}
	return s
}

// AddState adds a state, or returns the existing state of that name. When
// forceNew is true and the name is already taken, 'x' is appended to the
// name until it is unique, and a new state is always created. An empty
// name is rewritten to "empty".
func (a *Automaton) AddState(name string, start, final bool, tag any, forceNew bool) *State {
	if name == "" {
		name = "empty"
	}
	if !forceNew {
		if existing, ok := a.StateByName(name); ok {
			return existing
		}
	} else {
		for {
			if _, taken := a.nameToID[name]; !taken {
				break
			}
			name += "x"
		}
	}
	id := len(a.states)
	s := newState(id, name, start, final, tag)
	a.states = append(a.states, s)
	a.stateAlive.Set(uint(id))
	a.nameToID[name] = id
	a.logger.Debug("automaton: state added", "automaton", a.name, "state", name, "start", start, "final", final)
	return s
}

// DeleteState removes s and all of its incident edges, maintaining every
// invariant of SPEC_FULL.md §3.
func (a *Automaton) DeleteState(s *State) {
	if s == nil || !a.stateAlive.Test(uint(s.id)) {
		return
	}
	incident := s.edgesOut.Union(s.edgesIn)
	for i, ok := incident.NextSet(0); ok; i, ok = incident.NextSet(i + 1) {
		if e := a.edgeByID(int(i)); e != nil {
			a.DeleteEdge(e)
		}
	}
	a.stateAlive.Clear(uint(s.id))
	delete(a.nameToID, s.name)
}

// GetEdge returns the existing edge from → to on symbol, if any.
func (a *Automaton) GetEdge(from, to *State, symbol rune) (*Edge, bool) {
	for i, ok := from.edgesOut.NextSet(0); ok; i, ok = from.edgesOut.NextSet(i + 1) {
		e := a.edgeByID(int(i))
		if e != nil && e.sink == to.id && e.symbol == symbol {
			return e, true
		}
	}
	return nil, false
}

// AddEdge adds an edge from → to labelled symbol, or returns the existing
// one if an edge with the same (source, sink, symbol) already exists.
func (a *Automaton) AddEdge(from, to *State, symbol rune) *Edge {
	if e, ok := a.GetEdge(from, to, symbol); ok {
		return e
	}
	id := len(a.edges)
	e := newEdge(id, from.id, to.id, symbol)
	a.edges = append(a.edges, e)
	a.edgeAlive.Set(uint(id))
	from.edgesOut.Set(uint(id))
	to.edgesIn.Set(uint(id))
	a.indexEdge(e)
	return e
}

func (a *Automaton) indexEdge(e *Edge) {
	bySource, ok := a.delta[e.symbol]
	if !ok {
		bySource = make(map[int]*bitset.BitSet)
		a.delta[e.symbol] = bySource
	}
	sinks, ok := bySource[e.source]
	if !ok {
		sinks = bitset.New(0)
		bySource[e.source] = sinks
	}
	sinks.Set(uint(e.sink))
}

func (a *Automaton) unindexEdge(e *Edge) {
	if bySource, ok := a.delta[e.symbol]; ok {
		if sinks, ok := bySource[e.source]; ok {
			// Another live edge with the same (source,sink,symbol) cannot
			// exist (AddEdge dedupes), so it is safe to clear the bit.
			sinks.Clear(uint(e.sink))
		}
	}
}

// DeleteEdge removes e, maintaining every invariant of SPEC_FULL.md §3.
func (a *Automaton) DeleteEdge(e *Edge) {
	if e == nil || !a.edgeAlive.Test(uint(e.id)) {
		return
	}
	if src := a.stateByID(e.source); src != nil {
		src.edgesOut.Clear(uint(e.id))
	}
	if sink := a.stateByID(e.sink); sink != nil {
		sink.edgesIn.Clear(uint(e.id))
	}
	a.unindexEdge(e)
	a.edgeAlive.Clear(uint(e.id))
}

// Delta returns the image of s under the transition relation on symbol. If
// symbol is the zero rune, Delta returns the union of the images over every
// symbol of the alphabet (SPEC_FULL.md §4.1, "with no symbol").
func (a *Automaton) Delta(s *State, symbol rune) *StateSet {
	if symbol == 0 {
		return a.DeltaAll(s)
	}
	out := newStateSet(a)
	if bySource, ok := a.delta[symbol]; ok {
		if sinks, ok := bySource[s.id]; ok {
			out.bits = sinks.Clone()
		}
	}
	return out
}

// DeltaAll returns the union, over every alphabet symbol, of s's images.
func (a *Automaton) DeltaAll(s *State) *StateSet {
	out := newStateSet(a)
	for _, c := range a.alphabet.Symbols() {
		out = out.Union(a.Delta(s, c))
	}
	return out
}

// DeltaSet returns the union of Delta(s, symbol) over every s in set.
func (a *Automaton) DeltaSet(set *StateSet, symbol rune) *StateSet {
	out := newStateSet(a)
	for _, s := range set.States() {
		out = out.Union(a.Delta(s, symbol))
	}
	return out
}

// DeltaStar iterates Delta over word starting from currentStates. If the
// frontier becomes empty at any point it returns the empty set
// immediately, without consuming the rest of the word.
func (a *Automaton) DeltaStar(currentStates *StateSet, word string) *StateSet {
	cur := currentStates
	for _, c := range word {
		if cur.IsEmpty() {
			return newStateSet(a)
		}
		cur = a.DeltaSet(cur, c)
	}
	return cur
}

// Accepts reports whether word is in the automaton's language: false for
// an automaton with no states, true iff deltaStar(startStates, word)
// contains a final state.
func (a *Automaton) Accepts(word string) bool {
	if a.NumStates() == 0 {
		return false
	}
	reached := a.DeltaStar(a.StartStates(), word)
	return reached.HasFinal()
}

// IsDeterministic reports whether the automaton has exactly one start
// state and at most one successor per (state, symbol).
func (a *Automaton) IsDeterministic() bool {
	if a.StartStates().Len() != 1 {
		return false
	}
	for _, s := range a.States() {
		for _, c := range a.alphabet.Symbols() {
			if a.Delta(s, c).Len() > 1 {
				return false
			}
		}
	}
	return true
}

// Copy returns a freshly owned, structurally identical automaton: same
// state names, flags, tags and edges, but no graph object shared with a.
func (a *Automaton) Copy() *Automaton {
	out := NewAutomaton(WithName(a.name), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	idMap := make(map[int]*State, len(a.states))
	for _, s := range a.States() {
		idMap[s.id] = out.AddState(s.name, s.start, s.final, s.tag, false)
	}
	for _, e := range a.Edges() {
		from := idMap[e.source]
		to := idMap[e.sink]
		ne := out.AddEdge(from, to, e.symbol)
		ne.re = e.re
	}
	return out
}
