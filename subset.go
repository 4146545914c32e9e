package automata

import "context"

// shortRenamed returns a freshly owned copy of a whose state names are
// replaced by short sequential identifiers (q0, q1, ...), in ascending id
// order. It exists purely to bound the length of canonical set-names
// during subset construction (SPEC_FULL.md §4.3's "optionally rename
// states to short identifiers") and is distinct from RenameStatesDFS
// (§4.5), which requires a single start state and a fixed DFS order.
func (a *Automaton) shortRenamed() *Automaton {
	out := NewAutomaton(WithName(a.name), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	idMap := make(map[int]*State, len(a.states))
	for i, s := range a.States() {
		idMap[s.id] = out.AddState(shortName(i), s.start, s.final, s.tag, false)
	}
	for _, e := range a.Edges() {
		out.AddEdge(idMap[e.source], idMap[e.sink], e.symbol)
	}
	return out
}

func shortName(i int) string {
	return "q" + toBase62(i)
}

// MakeDeterministic returns a freshly owned DFA equivalent to a, built via
// the subset construction (SPEC_FULL.md §4.3). If a is already
// deterministic, a copy of it is returned unchanged. If the construction
// reaches the automaton's work limit, it stops and the automaton built so
// far is returned; subsets still waiting on the frontier then have no
// outgoing edges, and that result is not equivalent to a.
func (a *Automaton) MakeDeterministic() *Automaton {
	out, _ := a.MakeDeterministicContext(context.Background())
	return out
}

// MakeDeterministicContext is MakeDeterministic with ctx checked on every
// frontier step, so a caller can bound the subset construction's cost on
// adversarial input without the operation itself becoming concurrent
// (SPEC_FULL.md §5: context.Context as a cancellation signal only).
func (a *Automaton) MakeDeterministicContext(ctx context.Context) (*Automaton, error) {
	if a.IsDeterministic() {
		return a.Copy(), nil
	}

	src := a.Reduce().shortRenamed()
	out := NewAutomaton(WithName("det("+a.name+")"), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger

	startSet := src.StartStates()
	visited := make(map[string]*State)

	startState := out.AddState(startSet.CanonicalName(), true, startSet.HasFinal(), startSet, false)
	visited[startSet.CanonicalName()] = startState

	frontier := []*StateSet{startSet}
	work := 0
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		work++
		if work > out.workLimit {
			break
		}
		S := frontier[0]
		frontier = frontier[1:]
		curName := S.CanonicalName()
		cur := visited[curName]

		for _, c := range src.alphabet.Symbols() {
			T := src.DeltaSet(S, c)
			tName := T.CanonicalName()
			next, ok := visited[tName]
			if !ok {
				next = out.AddState(tName, false, T.HasFinal(), T, false)
				visited[tName] = next
				frontier = append(frontier, T)
			}
			out.AddEdge(cur, next, c)
		}
	}
	return out, nil
}
