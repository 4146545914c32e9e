package automata

import (
	"io"
	"log/slog"
)

// config collects the functional options accepted by NewAutomaton and the
// regex/parser constructors. It follows the options pattern used
// throughout the retrieved pack's service-layer constructors (e.g.
// GoSearch's internal/commit.Options), generalized to this library's
// smaller surface.
type config struct {
	name     string
	alphabet *Alphabet
	logger   *slog.Logger
	workLimit int
}

func defaultConfig() *config {
	return &config{
		alphabet:  DefaultAlphabet(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		workLimit: DefaultWorkLimit,
	}
}

// DefaultWorkLimit bounds the number of subsets the subset construction
// will expand before giving up (the isomorphism search does not use it),
// mirroring the
// "TooComplexToDeterminize" style guard used by automaton libraries in the
// retrieved pack (geange-automaton's DEFAULT_DETERMINIZE_WORK_LIMIT).
const DefaultWorkLimit = 1 << 16

// Option configures an Automaton or a parser at construction time.
type Option func(*config)

// WithName sets the automaton's display name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithAlphabet sets the alphabet used by the automaton or parser. The
// default is DefaultAlphabet (symbols 'a','b').
func WithAlphabet(a *Alphabet) Option {
	return func(c *config) {
		if a != nil {
			c.alphabet = a
		}
	}
}

// WithLogger injects a *slog.Logger for Debug-level construction and
// algorithm-selection events. The default is a discarding logger; the
// library never logs on its own initiative otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithWorkLimit overrides DefaultWorkLimit for a single automaton.
func WithWorkLimit(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.workLimit = limit
		}
	}
}
