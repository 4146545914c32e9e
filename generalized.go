package automata

import "fmt"

// GeneralizedAutomaton is an automaton whose edges carry RegularExpression
// labels rather than single symbols, with a unique start state (not final)
// and a unique final state (not start) connecting to the rest of the graph
// only through those labelled edges (SPEC_FULL.md §4.7). It exists only to
// be reduced to a single RegularExpression by state elimination; nothing
// else in the package builds or consumes one directly.
type GeneralizedAutomaton struct {
	*Automaton
	start *State
	final *State
}

// CopyOf builds the generalized form of a: a fresh start state with
// epsilon-labelled edges to every one of a's start states, a fresh final
// state with epsilon-labelled edges from every one of a's final states,
// and one regex-labelled edge per original edge, with parallel edges
// between the same pair of states summed into a single Sum node.
func CopyOf(a *Automaton) *GeneralizedAutomaton {
	out := NewAutomaton(WithName("gen("+a.name+")"), WithAlphabet(a.alphabet), WithWorkLimit(a.workLimit))
	out.logger = a.logger
	g := &GeneralizedAutomaton{Automaton: out}
	g.start = out.AddState("start", true, false, nil, true)
	g.final = out.AddState("final", false, true, nil, true)

	idMap := make(map[int]*State, len(a.states))
	for _, s := range a.States() {
		idMap[s.id] = out.AddState("s:"+s.name, false, false, nil, true)
	}

	eps := Word("", WithAlphabet(a.alphabet))
	for _, s := range a.States() {
		if s.start {
			g.addGeneralizedEdge(g.start, idMap[s.id], eps)
		}
		if s.final {
			g.addGeneralizedEdge(idMap[s.id], g.final, eps)
		}
	}
	for _, e := range a.Edges() {
		g.addGeneralizedEdge(idMap[e.source], idMap[e.sink], Word(string(e.symbol), WithAlphabet(a.alphabet)))
	}
	return g
}

// addGeneralizedEdge adds a regex-labelled edge from → to, summing it with
// any existing edge already connecting the same pair of states (AddEdge's
// ordinary dedup-by-symbol behavior collapses them into one edge, since
// every generalized edge shares generalizedPlaceholder as its symbol).
func (g *GeneralizedAutomaton) addGeneralizedEdge(from, to *State, re *RegularExpression) *Edge {
	e := g.Automaton.AddEdge(from, to, generalizedPlaceholder)
	if e.re == nil {
		e.re = re
	} else {
		e.re = Sum(e.re, re)
	}
	return e
}

// EquivalentRE reduces g to a single RegularExpression by repeated state
// elimination (SPEC_FULL.md §4.7): while an internal (non-boundary) state
// remains, pick one, fold its self-loop and every in/out edge pair into
// new edges between its neighbors, then delete it. Each elimination
// strictly shrinks the state count, so the loop always terminates; the
// regex on the sole remaining start→final edge, or Empty if no such edge
// survives, is the result.
func (g *GeneralizedAutomaton) EquivalentRE() *RegularExpression {
	for {
		var q *State
		for _, s := range g.Automaton.States() {
			if s.id != g.start.id && s.id != g.final.id {
				q = s
				break
			}
		}
		if q == nil {
			break
		}
		g.eliminate(q)
	}
	if e, ok := g.Automaton.GetEdge(g.start, g.final, generalizedPlaceholder); ok {
		return e.re
	}
	return Empty(WithAlphabet(g.alphabet))
}

func (g *GeneralizedAutomaton) eliminate(q *State) {
	a := g.Automaton

	var loop *RegularExpression
	if self, ok := a.GetEdge(q, q, generalizedPlaceholder); ok {
		loop = self.re
	}

	var ins, outs []*Edge
	for i, ok := q.edgesIn.NextSet(0); ok; i, ok = q.edgesIn.NextSet(i + 1) {
		if e := a.edgeByID(int(i)); e != nil && e.source != q.id {
			ins = append(ins, e)
		}
	}
	for i, ok := q.edgesOut.NextSet(0); ok; i, ok = q.edgesOut.NextSet(i + 1) {
		if e := a.edgeByID(int(i)); e != nil && e.sink != q.id {
			outs = append(outs, e)
		}
	}

	for _, inE := range ins {
		u := a.stateByID(inE.source)
		for _, outE := range outs {
			v := a.stateByID(outE.sink)
			var newRE *RegularExpression
			if loop != nil {
				newRE = Concat(Concat(inE.re, Star(loop)), outE.re)
			} else {
				newRE = Concat(inE.re, outE.re)
			}
			g.addGeneralizedEdge(u, v, newRE)
		}
	}
	a.DeleteState(q)
}

// String renders g's name and current state count for debugging.
func (g *GeneralizedAutomaton) String() string {
	return fmt.Sprintf("GeneralizedAutomaton(%s, %d states)", g.Automaton.Name(), g.Automaton.NumStates())
}
