package automata

import "context"

// Isomorphic reports whether a and b are isomorphic: there exists a
// bijection between their states preserving start/final flags and every
// labelled edge. It is exact and exponential — SPEC_FULL.md §4.6 and §9
// both note the source's "isomorphicOpt" shortcut is unsound, so only this
// exhaustive search is implemented. Intended for small graphs; callers are
// responsible for bounding input size.
func (a *Automaton) Isomorphic(b *Automaton) bool {
	ok, _ := a.IsomorphicContext(context.Background(), b)
	return ok
}

// IsomorphicContext is Isomorphic with ctx checked on every permutation
// step of the exhaustive search, so a caller can bound its exponential
// cost on adversarial input (SPEC_FULL.md §5: context.Context as a
// cancellation signal only, never spawning a goroutine).
func (a *Automaton) IsomorphicContext(ctx context.Context, b *Automaton) (bool, error) {
	if a.NumStates() != b.NumStates() || a.NumEdges() != b.NumEdges() {
		return false, nil
	}
	if a.StartStates().Len() != b.StartStates().Len() {
		return false, nil
	}
	if a.FinalStates().Len() != b.FinalStates().Len() {
		return false, nil
	}
	if !a.alphabet.Equal(b.alphabet) {
		return false, nil
	}

	statesA := a.States()
	statesB := b.States()
	n := len(statesA)

	idIndexA := make(map[int]int, n)
	for i, s := range statesA {
		idIndexA[s.id] = i
	}
	idIndexB := make(map[int]int, n)
	for i, s := range statesB {
		idIndexB[s.id] = i
	}

	type edgeKey struct {
		src, sink int
		symbol    rune
	}
	bEdges := make(map[edgeKey]bool, b.NumEdges())
	for _, e := range b.Edges() {
		bEdges[edgeKey{idIndexB[e.source], idIndexB[e.sink], e.symbol}] = true
	}
	aEdges := a.Edges()

	check := func(p []int) bool {
		for i, sa := range statesA {
			sb := statesB[p[i]]
			if sa.start != sb.start || sa.final != sb.final {
				return false
			}
		}
		for _, e := range aEdges {
			srcIdx := p[idIndexA[e.source]]
			sinkIdx := p[idIndexA[e.sink]]
			if !bEdges[edgeKey{srcIdx, sinkIdx, e.symbol}] {
				return false
			}
		}
		return true
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	found, cancelled := permuteUntil(ctx, perm, 0, check)
	if cancelled {
		return found, ctx.Err()
	}
	return found, nil
}

// permuteUntil enumerates permutations of perm in place by recursive
// swapping (position k is swapped with each later position in turn, then
// positions k+1.. are permuted), calling check on each and
// short-circuiting as soon as check returns true or ctx is cancelled. The
// second return reports whether enumeration stopped early because of
// cancellation rather than a match.
func permuteUntil(ctx context.Context, perm []int, k int, check func([]int) bool) (bool, bool) {
	if ctx.Err() != nil {
		return false, true
	}
	if k >= len(perm)-1 {
		return check(perm), false
	}
	for i := k; i < len(perm); i++ {
		perm[k], perm[i] = perm[i], perm[k]
		found, cancelled := permuteUntil(ctx, perm, k+1, check)
		if found || cancelled {
			return found, cancelled
		}
		perm[k], perm[i] = perm[i], perm[k]
	}
	return false, false
}
