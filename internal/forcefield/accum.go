package forcefield

// Accumulator collects the per-atom energy gradient and the virial tensor for
// one evaluation pass. Contributions are always added, never overwritten, so
// several terms can share one Accumulator. A nil Gradient or Virial slice
// means that output was not requested and the corresponding work is skipped.
type Accumulator struct {
	// Gradient holds dE/dx for every atom, length 3*natom, laid out
	// x0,y0,z0,x1,... Nil when gradients are not requested.
	Gradient []float64

	// Virial holds the 3x3 virial tensor row-major as 9 doubles. Nil when
	// the virial is not requested.
	Virial []float64
}

// NewAccumulator returns an Accumulator for natom atoms. Either output can be
// switched off to skip its accumulation entirely.
func NewAccumulator(natom int, wantGradient, wantVirial bool) *Accumulator {
	acc := &Accumulator{}
	if wantGradient {
		acc.Gradient = make([]float64, 3*natom)
	}
	if wantVirial {
		acc.Virial = make([]float64, 9)
	}
	return acc
}

func (a *Accumulator) WantGradient() bool { return a.Gradient != nil }
func (a *Accumulator) WantVirial() bool   { return a.Virial != nil }

// AddPair accumulates one pairwise radial contribution. delta points from
// atom i to atom j and f is the radial derivative dE/dr divided by r, so that
// f*delta is the gradient projection: +f*delta goes to atom j, -f*delta to
// atom i, and f*(delta outer delta) to the virial.
func (a *Accumulator) AddPair(i, j int, delta [3]float64, f float64) {
	if a.Gradient != nil {
		a.Gradient[3*j] += f * delta[0]
		a.Gradient[3*j+1] += f * delta[1]
		a.Gradient[3*j+2] += f * delta[2]
		a.Gradient[3*i] -= f * delta[0]
		a.Gradient[3*i+1] -= f * delta[1]
		a.Gradient[3*i+2] -= f * delta[2]
	}
	if a.Virial != nil {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				a.Virial[3*r+c] += delta[r] * delta[c] * f
			}
		}
	}
}

// Reset zeroes all accumulated contributions, keeping the buffers.
func (a *Accumulator) Reset() {
	for i := range a.Gradient {
		a.Gradient[i] = 0
	}
	for i := range a.Virial {
		a.Virial[i] = 0
	}
}

// Merge adds the contents of b into a. The shapes must match; outputs that
// were not requested on either side are skipped.
func (a *Accumulator) Merge(b *Accumulator) error {
	if a.Gradient != nil && b.Gradient != nil {
		if len(a.Gradient) != len(b.Gradient) {
			return ErrDimensionMismatch
		}
		for i, v := range b.Gradient {
			a.Gradient[i] += v
		}
	}
	if a.Virial != nil && b.Virial != nil {
		for i, v := range b.Virial {
			a.Virial[i] += v
		}
	}
	return nil
}

// clone returns an empty Accumulator with the same requested outputs as a.
func (a *Accumulator) clone() *Accumulator {
	c := &Accumulator{}
	if a.Gradient != nil {
		c.Gradient = make([]float64, len(a.Gradient))
	}
	if a.Virial != nil {
		c.Virial = make([]float64, 9)
	}
	return c
}
