package ewald

import (
	"fmt"
	"math"

	"github.com/san-kum/mdforce/internal/cell"
	"github.com/san-kum/mdforce/internal/forcefield"
	"github.com/san-kum/mdforce/internal/nblist"
)

// Correction computes the short-range corrections to the reciprocal sum: the
// Gaussian self-energy of each charge and the removal of the spurious
// full-Ewald interaction between excluded or attenuated pairs. It must share
// alpha with the Reciprocal sum and the real-space screened kernel.
type Correction struct {
	cell  *cell.Cell
	alpha float64
}

func NewCorrection(c *cell.Cell, alpha float64) (*Correction, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("ewald: alpha %g: %w", alpha, forcefield.ErrParameterBounds)
	}
	return &Correction{cell: c, alpha: alpha}, nil
}

func (c *Correction) Alpha() float64 { return c.alpha }

// Compute returns the correction energy for one center atom: the
// self-interaction term -alpha/sqrt(pi)*q^2 (position independent, no
// gradient or virial) plus, for every scaling row with index strictly below
// the center (single counting across the full center loop), the subtracted
// term (1-s)*q_i*q_j*erf(alpha*d)/d over the minimum-image separation.
// Gradient and virial follow the usual displacement projection with the sign
// of the subtraction. A scaling row with scale 1 contributes exactly nothing.
func (c *Correction) Compute(pos, charges []float64, center int, scales []nblist.Scale, acc *forcefield.Accumulator) float64 {
	energy := -c.alpha / math.Sqrt(math.Pi) * charges[center] * charges[center]

	for _, sc := range scales {
		other := sc.Other
		if other >= center {
			continue
		}
		fac := (1 - sc.Scale) * charges[other] * charges[center]
		if fac == 0 {
			continue
		}
		delta := [3]float64{
			pos[3*center] - pos[3*other],
			pos[3*center+1] - pos[3*other+1],
			pos[3*center+2] - pos[3*other+2],
		}
		c.cell.MinimumImage(&delta)
		d := math.Sqrt(delta[0]*delta[0] + delta[1]*delta[1] + delta[2]*delta[2])
		x := c.alpha * d
		pot := math.Erf(x) / d

		if acc.WantGradient() || acc.WantVirial() {
			g := -fac * (twoOverSqrtPi*c.alpha*math.Exp(-x*x) - pot) / (d * d)
			// delta points from other to center.
			acc.AddPair(other, center, delta, g)
		}
		energy -= fac * pot
	}
	return energy
}

// CorrectionTerm binds a Correction to one system, looping all center atoms.
// Workers controls the parallel decomposition over centers (<= 1 is serial).
type CorrectionTerm struct {
	Corr    *Correction
	Pos     []float64
	Charges []float64
	Scales  [][]nblist.Scale
	Workers int
}

func (t *CorrectionTerm) Name() string { return "ewald_cor" }

func (t *CorrectionTerm) Compute(acc *forcefield.Accumulator) (float64, error) {
	return forcefield.ComputeCenters(len(t.Charges), t.Workers, acc, func(center int, acc *forcefield.Accumulator) (float64, error) {
		var scales []nblist.Scale
		if t.Scales != nil {
			scales = t.Scales[center]
		}
		return t.Corr.Compute(t.Pos, t.Charges, center, scales, acc), nil
	})
}
