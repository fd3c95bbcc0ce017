package pair

import "math"

// LJ is the 12-6 Lennard-Jones potential
//
//	e = 4*eps*((sigma/d)^12 - (sigma/d)^6)
//
// with per-pair parameters mixed from the per-atom arrays: arithmetic mean
// for sigma, geometric mean for epsilon (Lorentz-Berthelot).
type LJ struct {
	Sigma   []float64
	Epsilon []float64
}

func NewLJ(sigma, epsilon []float64) *LJ {
	return &LJ{Sigma: sigma, Epsilon: epsilon}
}

func (p *LJ) Name() string { return "lj" }

func (p *LJ) Energy(i, j int, d float64) (float64, float64) {
	sigma := 0.5 * (p.Sigma[i] + p.Sigma[j])
	eps := math.Sqrt(p.Epsilon[i] * p.Epsilon[j])
	x := sigma / d
	x3 := x * x * x
	x6 := x3 * x3
	e := 4 * eps * (x6*x6 - x6)
	g := 4 * eps * (6*x6 - 12*x6*x6) / d
	return e, g
}

func (p *LJ) kernel() {}
