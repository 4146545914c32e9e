// Package automata implements finite automata and regular expressions over
// finite alphabets of single-character symbols.
//
// It provides the regular operations and their closure properties on
// non-deterministic and deterministic finite automata, determinization via
// subset construction, minimization via both Hopcroft's algorithm and
// Brzozowski's double-reversal algorithm, state-elimination conversion from
// an automaton to an equivalent regular expression, a regular-expression
// parser and compiler (in two independent implementations, for
// cross-checking), equivalence and isomorphism testing, and a canonical
// textual signature for deterministic automata.
//
// The package is single-threaded and synchronous: no operation starts a
// goroutine, and the handful of operations whose cost is unbounded on
// adversarial input accept a context.Context purely as a cancellation
// signal.
package automata
