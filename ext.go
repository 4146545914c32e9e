package automata

// ExtRegularExpression is the "extended" regex façade of SPEC_FULL.md's
// Library surface: unlike RegularExpression, it is closed under
// intersection and complement, at the cost of being backed directly by an
// automaton rather than a structural tree — there is no String() or
// Similar() here, only round-tripping back to a RegularExpression via
// state elimination.
type ExtRegularExpression struct {
	eqAut *Automaton
}

// Ext is a namespace for ExtRegularExpression's constructors, mirroring
// Sample's grouping of the package's example/extension constructors under
// a zero-value namespace value.
var Ext extNamespace

type extNamespace struct{}

// Intersect returns the extended regex for the intersection of r1 and
// r2's languages (SPEC_FULL.md §8, item 7).
func (extNamespace) Intersect(r1, r2 *RegularExpression) *ExtRegularExpression {
	return &ExtRegularExpression{eqAut: r1.eqAut.Intersect(r2.eqAut)}
}

// Complement returns the extended regex for the complement of r's
// language.
func (extNamespace) Complement(r *RegularExpression) *ExtRegularExpression {
	return &ExtRegularExpression{eqAut: r.eqAut.Complement()}
}

// FromAutomaton wraps a copy of a as an extended regex.
func (extNamespace) FromAutomaton(a *Automaton) *ExtRegularExpression {
	return &ExtRegularExpression{eqAut: a.Copy()}
}

// Parse parses s as a regular expression and wraps it as an extended
// regex, for callers that want Intersect/Complement available on a
// parsed pattern without tracking a separate RegularExpression.
func (extNamespace) Parse(s string, opts ...Option) (*ExtRegularExpression, error) {
	re, err := Parse(s, opts...)
	if err != nil {
		return nil, err
	}
	return &ExtRegularExpression{eqAut: re.eqAut.Copy()}, nil
}

// Accepts reports whether w is in e's language.
func (e *ExtRegularExpression) Accepts(w string) bool {
	return e.eqAut.Accepts(w)
}

// EquivalentAutomaton returns a freshly owned copy of e's backing
// automaton.
func (e *ExtRegularExpression) EquivalentAutomaton() *Automaton {
	return e.eqAut.Copy()
}

// ToRegularExpression reduces e back to a structural RegularExpression
// tree via state elimination (SPEC_FULL.md §8, item 6's round-trip
// property).
func (e *ExtRegularExpression) ToRegularExpression() *RegularExpression {
	return CopyOf(e.eqAut).EquivalentRE()
}
