package automata

import "github.com/bits-and-blooms/bitset"

// State is a vertex of an Automaton, owned exclusively by it. Its name is
// unique within the owning automaton; an empty name is rewritten to the
// literal "empty" at construction time. Tag carries auxiliary
// per-construction data — the subset construction stores the originating
// subset there — and is never interpreted by the core itself.
type State struct {
	id       int
	name     string
	start    bool
	final    bool
	tag      any
	edgesOut *bitset.BitSet // edge ids
	edgesIn  *bitset.BitSet // edge ids
}

// ID returns the state's arena index within its owning automaton. IDs are
// stable for the lifetime of the automaton but are not meaningful across
// automata.
func (s *State) ID() int { return s.id }

// Name returns the state's name.
func (s *State) Name() string { return s.name }

// Start reports whether the state is a start state.
func (s *State) Start() bool { return s.start }

// Final reports whether the state is an accepting state.
func (s *State) Final() bool { return s.final }

// Tag returns the state's auxiliary data, or nil if none was set.
func (s *State) Tag() any { return s.tag }

// SetTag overwrites the state's auxiliary data.
func (s *State) SetTag(tag any) { s.tag = tag }

func newState(id int, name string, start, final bool, tag any) *State {
	if name == "" {
		name = "empty"
	}
	return &State{
		id:       id,
		name:     name,
		start:    start,
		final:    final,
		tag:      tag,
		edgesOut: bitset.New(0),
		edgesIn:  bitset.New(0),
	}
}
