package automata

// MinimizeMethod selects between the two minimization algorithms of
// SPEC_FULL.md §4.4. Both must produce automata accepting the same
// language (Testable Property 3); Brzozowski exists chiefly as a
// cross-check on Hopcroft's (considerably more involved) implementation.
type MinimizeMethod int

const (
	// MinimizeHopcroft runs partition refinement (Hopcroft's algorithm).
	MinimizeHopcroft MinimizeMethod = iota
	// MinimizeBrzozowski runs reverse/determinize twice.
	MinimizeBrzozowski
)

// Minimize returns a freshly owned, minimal, complete DFA equivalent to a,
// using the requested algorithm.
func (a *Automaton) Minimize(method MinimizeMethod) *Automaton {
	if method == MinimizeBrzozowski {
		return a.minimizeBrzozowski()
	}
	return a.minimizeHopcroft()
}

// minimizeBrzozowski implements SPEC_FULL.md §4.4's Brzozowski recipe:
// reverse, determinize, reverse, determinize, complete.
func (a *Automaton) minimizeBrzozowski() *Automaton {
	out := a.Reverse().MakeDeterministic().Reverse().MakeDeterministic().Complete()
	a.logger.Debug("automaton: minimized", "algorithm", "brzozowski", "automaton", a.name, "states", out.NumStates())
	return out
}

// minimizeHopcroft implements SPEC_FULL.md §4.4's Hopcroft recipe:
// determinize, DFS-rename, reduce and complete, partition-refine, complete.
func (a *Automaton) minimizeHopcroft() *Automaton {
	det := a.MakeDeterministic()
	renamed, err := det.RenameStatesDFS()
	if err != nil || renamed.NumStates() == 0 {
		return det.Complete()
	}
	complete := renamed.Complete()
	if complete.NumStates() < 2 {
		a.logger.Debug("automaton: minimized", "algorithm", "hopcroft", "automaton", a.name, "states", complete.NumStates())
		return complete
	}

	partition := hopcroftPartition(complete)
	out := buildFromPartition(complete, partition).Complete()
	a.logger.Debug("automaton: minimized", "algorithm", "hopcroft", "automaton", a.name, "states", out.NumStates())
	return out
}

// hopcroftEntry pairs a symbol with the block it splits against, as held
// in the waiting set W of SPEC_FULL.md §4.4.
type hopcroftEntry struct {
	symbol rune
	block  *StateSet
}

// hopcroftPartition runs Hopcroft's partition-refinement loop over a
// deterministic, complete automaton det, returning the final partition
// as a list of disjoint StateSets covering every state.
func hopcroftPartition(det *Automaton) []*StateSet {
	symbols := det.alphabet.Symbols()

	// predecessors[c][t] = ids of states with a c-transition into state t.
	predecessors := make(map[rune][][]int, len(symbols))
	n := det.NumStates()
	for _, c := range symbols {
		preds := make([][]int, n)
		for _, s := range det.States() {
			succ := det.Delta(s, c)
			for _, t := range succ.IDs() {
				preds[t] = append(preds[t], s.id)
			}
		}
		predecessors[c] = preds
	}

	predecessorsOf := func(c rune, target *StateSet) *StateSet {
		out := newStateSet(det)
		preds := predecessors[c]
		for _, t := range target.IDs() {
			for _, p := range preds[t] {
				out.Add(p)
			}
		}
		return out
	}

	final := det.FinalStates()
	nonFinal := newStateSet(det)
	for _, s := range det.States() {
		if !s.final {
			nonFinal.Add(s.id)
		}
	}

	var partition []*StateSet
	if final.Len() > 0 {
		partition = append(partition, final)
	}
	if nonFinal.Len() > 0 {
		partition = append(partition, nonFinal)
	}

	smaller := func(x, y *StateSet) *StateSet {
		if x.Len() <= y.Len() {
			return x
		}
		return y
	}

	var waiting []hopcroftEntry
	for _, c := range symbols {
		if final.Len() > 0 && nonFinal.Len() > 0 {
			waiting = append(waiting, hopcroftEntry{c, smaller(final, nonFinal)})
		} else if final.Len() > 0 {
			waiting = append(waiting, hopcroftEntry{c, final})
		} else if nonFinal.Len() > 0 {
			waiting = append(waiting, hopcroftEntry{c, nonFinal})
		}
	}

	for len(waiting) > 0 {
		entry := waiting[0]
		waiting = waiting[1:]
		S := entry.block
		pre := predecessorsOf(entry.symbol, S)
		if pre.IsEmpty() {
			continue
		}

		next := make([]*StateSet, 0, len(partition))
		for _, B := range partition {
			bPrime := B.Intersect(pre)
			bDouble := B.Difference(pre)
			if bPrime.IsEmpty() || bDouble.IsEmpty() {
				next = append(next, B)
				continue
			}
			// B splits into bPrime and bDouble. Update every pending
			// waiting-set entry that still names B.
			for i := range waiting {
				if waiting[i].block == B {
					waiting[i] = hopcroftEntry{waiting[i].symbol, bPrime}
					waiting = append(waiting, hopcroftEntry{waiting[i].symbol, bDouble})
				}
			}
			for _, cPrime := range symbols {
				if !entryListContainsBlock(waiting, cPrime, B) {
					waiting = append(waiting, hopcroftEntry{cPrime, smaller(bPrime, bDouble)})
				}
			}
			next = append(next, bPrime, bDouble)
		}
		partition = next
	}

	return partition
}

func entryListContainsBlock(entries []hopcroftEntry, symbol rune, block *StateSet) bool {
	for _, e := range entries {
		if e.symbol == symbol && e.block == block {
			return true
		}
	}
	return false
}

// buildFromPartition collapses det (deterministic) according to partition,
// one block per output state: start iff any member is a start state, final
// iff any member is final, transitions inherited from an arbitrary
// representative of the block.
func buildFromPartition(det *Automaton, partition []*StateSet) *Automaton {
	out := NewAutomaton(WithName("min("+det.name+")"), WithAlphabet(det.alphabet), WithWorkLimit(det.workLimit))
	out.logger = det.logger

	blockOf := make(map[int]*StateSet, det.NumStates())
	for _, b := range partition {
		for _, id := range b.IDs() {
			blockOf[id] = b
		}
	}

	newState := make(map[*StateSet]*State, len(partition))
	for _, b := range partition {
		members := b.States()
		rep := members[0]
		var start, final bool
		for _, m := range members {
			start = start || m.start
			final = final || m.final
		}
		newState[b] = out.AddState(rep.name, start, final, nil, true)
	}

	for _, b := range partition {
		rep := b.States()[0]
		cur := newState[b]
		for _, c := range det.alphabet.Symbols() {
			succ := det.Delta(rep, c)
			if succ.IsEmpty() {
				continue
			}
			succState := succ.States()[0]
			out.AddEdge(cur, newState[blockOf[succState.id]], c)
		}
	}
	return out
}
