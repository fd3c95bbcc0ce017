package pair

import "math"

// Damping steepness and global scaling of the Grimme dispersion correction.
const (
	grimmeSteep = 20.0
	grimmeScale = 1.1
)

// Grimme is the damped R^-6 dispersion correction
//
//	e = -1.1*fdamp(d)*c6/d^6,  fdamp(d) = 1/(1+exp(-20*(d/r0-1)))
//
// with r0 the sum of the per-atom van der Waals radii and c6 the geometric
// mean of the per-atom dispersion coefficients. The sigmoid damping removes
// the R^-6 singularity at short range.
type Grimme struct {
	R0 []float64
	C6 []float64
}

func NewGrimme(r0, c6 []float64) *Grimme {
	return &Grimme{R0: r0, C6: c6}
}

func (p *Grimme) Name() string { return "grimme" }

func (p *Grimme) Energy(i, j int, d float64) (float64, float64) {
	r0 := p.R0[i] + p.R0[j]
	c6 := math.Sqrt(p.C6[i] * p.C6[j])
	ex := math.Exp(-grimmeSteep * (d/r0 - 1))
	f := 1 / (1 + ex)
	d3 := d * d * d
	d6 := d3 * d3
	e := -grimmeScale * f * c6 / d6
	g := -grimmeScale * c6 / d6 * (grimmeSteep/r0*ex*f*f - 6*f/d)
	return e, g
}

func (p *Grimme) kernel() {}
