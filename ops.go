package automata

// Union returns a freshly owned automaton whose language is the union of
// a and b's languages. States and edges of both operands are copied in
// under names prefixed by each operand's automaton name (SPEC_FULL.md
// §4.2), preserving start/final flags on both halves.
func (a *Automaton) Union(b *Automaton) *Automaton {
	out := NewAutomaton(WithName("("+a.name+"+"+b.name+")"), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	copyInto(out, a, a.name+":")
	copyInto(out, b, b.name+":")
	return out
}

// copyInto copies every state and edge of src into dst, with every state
// name prefixed. It returns the prefix-to-new-state mapping, keyed by the
// original state id, for callers that need to reference the copies (e.g.
// Concat's final/start rewiring).
func copyInto(dst, src *Automaton, prefix string) map[int]*State {
	idMap := make(map[int]*State, len(src.states))
	for _, s := range src.States() {
		idMap[s.id] = dst.AddState(prefix+s.name, s.start, s.final, s.tag, true)
	}
	for _, e := range src.Edges() {
		from := idMap[e.source]
		to := idMap[e.sink]
		ne := dst.AddEdge(from, to, e.symbol)
		ne.re = e.re
	}
	return idMap
}

// Concat returns a freshly owned automaton whose language is the
// concatenation of a and b's languages (SPEC_FULL.md §4.2). Finality is
// cleared on the copied a-side, start is cleared on the copied b-side, and
// for every pair (final of a, start of b) an edge is added mirroring each
// out-edge of that b-start. Nullable operands are handled without
// epsilon edges: if a accepts the empty word the result is unioned with a
// copy of b; symmetrically for b; if both are nullable, additionally
// unioned with a single state accepting only the empty word.
func (a *Automaton) Concat(b *Automaton) *Automaton {
	out := NewAutomaton(WithName("("+a.name+b.name+")"), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger

	aIDs := copyInto(out, a, "1:")
	bIDs := copyInto(out, b, "2:")

	var aFinals []*State
	var bStarts []*State
	for _, s := range a.States() {
		if s.final {
			aFinals = append(aFinals, aIDs[s.id])
		}
	}
	for _, s := range b.States() {
		if s.start {
			bStarts = append(bStarts, s)
		}
	}
	for _, af := range aFinals {
		af.final = false
	}
	for _, origBStart := range bStarts {
		bIDs[origBStart.id].start = false
	}

	for _, origBStart := range bStarts {
		for i, ok := origBStart.edgesOut.NextSet(0); ok; i, ok = origBStart.edgesOut.NextSet(i + 1) {
			e := b.edgeByID(int(i))
			if e == nil {
				continue
			}
			to := bIDs[e.sink]
			for _, af := range aFinals {
				out.AddEdge(af, to, e.symbol)
			}
		}
	}

	result := out
	if a.Accepts("") {
		result = result.Union(b.Copy())
	}
	if b.Accepts("") {
		result = result.Union(a.Copy())
	}
	if a.Accepts("") && b.Accepts("") {
		eps := NewAutomaton(WithName("eps"), WithAlphabet(a.alphabet))
		eps.AddState("q0", true, true, nil, false)
		result = result.Union(eps)
	}
	return result
}

// Reverse returns a freshly owned automaton with every edge reversed and
// every state's start/final flags swapped.
func (a *Automaton) Reverse() *Automaton {
	out := NewAutomaton(WithName("rev("+a.name+")"), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	idMap := make(map[int]*State, len(a.states))
	for _, s := range a.States() {
		idMap[s.id] = out.AddState(s.name, s.final, s.start, s.tag, false)
	}
	for _, e := range a.Edges() {
		from := idMap[e.sink]
		to := idMap[e.source]
		out.AddEdge(from, to, e.symbol)
	}
	return out
}

// Reduce returns a freshly owned automaton containing only the states of a
// reachable from some start state AND co-reachable from some final state,
// and only the edges whose endpoints both survive.
func (a *Automaton) Reduce() *Automaton {
	forward := reachable(a, a.StartStates(), false)
	backward := reachable(a, a.FinalStates(), true)
	keep := forward.Intersect(backward)

	out := NewAutomaton(WithName(a.name), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	idMap := make(map[int]*State, keep.Len())
	for _, s := range keep.States() {
		idMap[s.id] = out.AddState(s.name, s.start, s.final, s.tag, false)
	}
	for _, e := range a.Edges() {
		from, okFrom := idMap[e.source]
		to, okTo := idMap[e.sink]
		if okFrom && okTo {
			ne := out.AddEdge(from, to, e.symbol)
			ne.re = e.re
		}
	}
	return out
}

// reachable computes, via DFS, the set of states reachable from seed. When
// backward is true it follows edgesIn instead of edgesOut, i.e. it
// computes co-reachability.
func reachable(a *Automaton, seed *StateSet, backward bool) *StateSet {
	visited := newStateSet(a)
	var stack []*State
	for _, s := range seed.States() {
		if !visited.Contains(s.id) {
			visited.Add(s.id)
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		adj := s.edgesOut
		if backward {
			adj = s.edgesIn
		}
		for i, ok := adj.NextSet(0); ok; i, ok = adj.NextSet(i + 1) {
			e := a.edgeByID(int(i))
			if e == nil {
				continue
			}
			nextID := e.sink
			if backward {
				nextID = e.source
			}
			if !visited.Contains(nextID) {
				visited.Add(nextID)
				if next := a.stateByID(nextID); next != nil {
					stack = append(stack, next)
				}
			}
		}
	}
	return visited
}

// Star returns a freshly owned automaton for the Kleene star of a's
// language: a fresh state that is both start and final, with old starts'
// out-edges rewired from it and old finals' in-edges rewired to it, then
// reduced.
func (a *Automaton) Star() *Automaton {
	out := NewAutomaton(WithName("("+a.name+")*"), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	idMap := make(map[int]*State, len(a.states))
	for _, s := range a.States() {
		idMap[s.id] = out.AddState(s.name, false, false, s.tag, false)
	}
	for _, e := range a.Edges() {
		out.AddEdge(idMap[e.source], idMap[e.sink], e.symbol)
	}

	fresh := out.AddState("startfinal", true, true, nil, true)
	for _, s := range a.States() {
		if s.start {
			news := idMap[s.id]
			for i, ok := news.edgesOut.NextSet(0); ok; i, ok = news.edgesOut.NextSet(i + 1) {
				e := out.edgeByID(int(i))
				if e == nil {
					continue
				}
				out.AddEdge(fresh, out.stateByID(e.sink), e.symbol)
			}
		}
		if s.final {
			news := idMap[s.id]
			for i, ok := news.edgesIn.NextSet(0); ok; i, ok = news.edgesIn.NextSet(i + 1) {
				e := out.edgeByID(int(i))
				if e == nil {
					continue
				}
				out.AddEdge(out.stateByID(e.source), fresh, e.symbol)
			}
		}
	}
	return out.Reduce()
}

// Complete returns a freshly owned, reduced automaton in which every
// (state, symbol) pair has at least one successor. A single fresh error
// state with self-loops on every symbol absorbs every missing transition.
// An automaton with no states becomes a single self-looping start state —
// the completed empty-language automaton.
func (a *Automaton) Complete() *Automaton {
	out := a.Reduce()
	alphabetSymbols := out.alphabet.Symbols()

	if out.NumStates() == 0 {
		q0 := out.AddState("q0", true, false, nil, false)
		for _, c := range alphabetSymbols {
			out.AddEdge(q0, q0, c)
		}
		return out
	}

	var errorState *State
	for _, s := range out.States() {
		for _, c := range alphabetSymbols {
			if out.Delta(s, c).IsEmpty() {
				if errorState == nil {
					errorState = out.AddState("error", false, false, nil, true)
					for _, c2 := range alphabetSymbols {
						out.AddEdge(errorState, errorState, c2)
					}
				}
				out.AddEdge(s, errorState, c)
			}
		}
	}
	return out
}

// Complement returns a freshly owned automaton accepting the complement of
// a's language: minimize, complete, then flip every state's final flag.
func (a *Automaton) Complement() *Automaton {
	out := a.Minimize(MinimizeHopcroft).Complete()
	for _, s := range out.States() {
		s.final = !s.final
	}
	return out
}

// Intersect returns a freshly owned automaton for the product construction
// of a and b: states are pairs (s1,s2), start iff both are start, final
// iff both are final, and a transition on c exists iff both originals
// transition on c. No reduction is performed; callers may follow with
// Minimize.
func (a *Automaton) Intersect(b *Automaton) *Automaton {
	out := NewAutomaton(WithName("("+a.name+"&"+b.name+")"), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger

	type pair struct{ x, y int }
	pairState := make(map[pair]*State)
	nameOf := func(x, y *State) string { return x.name + "#" + y.name }

	var queue []pair
	for _, x := range a.States() {
		for _, y := range b.States() {
			if x.start && y.start {
				p := pair{x.id, y.id}
				s := out.AddState(nameOf(x, y), true, x.final && y.final, nil, false)
				pairState[p] = s
				queue = append(queue, p)
			}
		}
	}

	visited := make(map[pair]bool)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if visited[p] {
			continue
		}
		visited[p] = true
		x := a.stateByID(p.x)
		y := b.stateByID(p.y)
		cur := pairState[p]
		for _, c := range a.alphabet.Symbols() {
			xs := a.Delta(x, c).States()
			ys := b.Delta(y, c).States()
			for _, xn := range xs {
				for _, yn := range ys {
					np := pair{xn.id, yn.id}
					ns, ok := pairState[np]
					if !ok {
						ns = out.AddState(nameOf(xn, yn), false, xn.final && yn.final, nil, false)
						pairState[np] = ns
						queue = append(queue, np)
					}
					out.AddEdge(cur, ns, c)
				}
			}
		}
	}
	return out
}

// Difference returns a freshly owned automaton for a's language minus b's:
// a ∩ complement(b).
func (a *Automaton) Difference(b *Automaton) *Automaton {
	return a.Intersect(b.Complement())
}
