package automata

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// stateSetSeparator joins member names when computing a StateSet's
// canonical name (SPEC_FULL.md §3, "Set of states as an entity").
const stateSetSeparator = ","

// StateSet is a set of state ids belonging to one Automaton, identified by
// a canonical name: the separator-joined, sorted concatenation of its
// members' names. Two StateSets with equal canonical names represent the
// same subset-construction or Hopcroft-partition state — this is how
// equality of subsets of States reduces to equality of strings.
//
// StateSet is the "Set algebra helpers" component of SPEC_FULL.md §2: a
// dedicated type keyed by canonical name, in place of the teacher's
// ad hoc prototype-extended built-in sets (Design Note 9.2).
type StateSet struct {
	owner *Automaton
	bits  *bitset.BitSet
}

func newStateSet(owner *Automaton) *StateSet {
	return &StateSet{owner: owner, bits: bitset.New(0)}
}

// Add inserts a state id into the set.
func (s *StateSet) Add(id int) { s.bits.Set(uint(id)) }

// Contains reports whether id is a member of the set.
func (s *StateSet) Contains(id int) bool { return s.bits.Test(uint(id)) }

// Len returns the number of members.
func (s *StateSet) Len() int { return int(s.bits.Count()) }

// IsEmpty reports whether the set has no members.
func (s *StateSet) IsEmpty() bool { return s.bits.None() }

// IDs returns the member ids in ascending order.
func (s *StateSet) IDs() []int {
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// States returns the member states, in ascending id order.
func (s *StateSet) States() []*State {
	ids := s.IDs()
	out := make([]*State, 0, len(ids))
	for _, id := range ids {
		if st := s.owner.stateByID(id); st != nil {
			out = append(out, st)
		}
	}
	return out
}

// Union returns a new StateSet containing the members of both sets.
func (s *StateSet) Union(other *StateSet) *StateSet {
	return &StateSet{owner: s.owner, bits: s.bits.Union(other.bits)}
}

// Intersect returns a new StateSet containing only members of both sets.
func (s *StateSet) Intersect(other *StateSet) *StateSet {
	return &StateSet{owner: s.owner, bits: s.bits.Intersection(other.bits)}
}

// Difference returns a new StateSet containing members of s not in other.
func (s *StateSet) Difference(other *StateSet) *StateSet {
	return &StateSet{owner: s.owner, bits: s.bits.Difference(other.bits)}
}

// Equal reports whether s and other contain the same members.
func (s *StateSet) Equal(other *StateSet) bool {
	return s.bits.Equal(other.bits)
}

// HasFinal reports whether any member state is final.
func (s *StateSet) HasFinal() bool {
	for _, st := range s.States() {
		if st.final {
			return true
		}
	}
	return false
}

// CanonicalName returns the sorted, separator-joined concatenation of the
// member states' names. An empty set's canonical name is the empty string.
func (s *StateSet) CanonicalName() string {
	ids := s.IDs()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if st := s.owner.stateByID(id); st != nil {
			names = append(names, st.name)
		}
	}
	slices.Sort(names)
	return strings.Join(names, stateSetSeparator)
}
