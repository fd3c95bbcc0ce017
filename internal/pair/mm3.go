package pair

import "math"

// MM3 is the Buckingham-like van der Waals potential of the MM3 force field
//
//	e = eps*(1.84e5*exp(-12*d/sigma) - 2.25*(sigma/d)^6)
//
// with sigma the sum of the per-atom radii and eps the geometric mean of the
// per-atom well depths. Atoms flagged in OnlyPauli interact through the
// repulsive wall alone; the attractive term is dropped for any pair that
// involves such an atom.
type MM3 struct {
	Sigma     []float64
	Epsilon   []float64
	OnlyPauli []bool
}

func NewMM3(sigma, epsilon []float64, onlyPauli []bool) *MM3 {
	return &MM3{Sigma: sigma, Epsilon: epsilon, OnlyPauli: onlyPauli}
}

func (p *MM3) Name() string { return "mm3" }

func (p *MM3) Energy(i, j int, d float64) (float64, float64) {
	sigma := p.Sigma[i] + p.Sigma[j]
	eps := math.Sqrt(p.Epsilon[i] * p.Epsilon[j])
	rep := 1.84e5 * math.Exp(-12*d/sigma)
	e := eps * rep
	g := eps * rep * (-12 / sigma)
	if !p.onlyPauli(i, j) {
		x := sigma / d
		x3 := x * x * x
		x6 := x3 * x3
		e -= eps * 2.25 * x6
		g += eps * 13.5 * x6 / d
	}
	return e, g
}

func (p *MM3) onlyPauli(i, j int) bool {
	return p.OnlyPauli != nil && (p.OnlyPauli[i] || p.OnlyPauli[j])
}

func (p *MM3) kernel() {}
