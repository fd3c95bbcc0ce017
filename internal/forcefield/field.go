package forcefield

// Term is one additive contribution to the total energy: a pair potential
// over a neighbor list, the Ewald reciprocal sum, the Ewald correction, etc.
// Compute adds gradient and virial contributions into acc and returns the
// term's energy. Implementations must be read-only during the call.
type Term interface {
	Name() string
	Compute(acc *Accumulator) (float64, error)
}

// ForceField sums a fixed set of terms into one total energy. It owns no
// accumulators; callers pass one per evaluation so repeated or concurrent
// evaluations cannot cross-contaminate.
type ForceField struct {
	terms []Term
}

// Result holds the outcome of one force-field evaluation.
type Result struct {
	Total float64
	Terms map[string]float64
}

func New(terms ...Term) *ForceField {
	return &ForceField{terms: terms}
}

func (ff *ForceField) Add(t Term) {
	ff.terms = append(ff.terms, t)
}

// Terms returns the registered terms in evaluation order.
func (ff *ForceField) Terms() []Term {
	return ff.terms
}

// Compute evaluates every term into acc and returns the total together with
// the per-term breakdown. The first failing term aborts the evaluation.
func (ff *ForceField) Compute(acc *Accumulator) (*Result, error) {
	res := &Result{Terms: make(map[string]float64, len(ff.terms))}
	for _, t := range ff.terms {
		e, err := t.Compute(acc)
		if err != nil {
			return nil, &TermError{Term: t.Name(), Wrapped: err}
		}
		res.Terms[t.Name()] += e
		res.Total += e
	}
	return res, nil
}
