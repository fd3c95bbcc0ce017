package ewald

import (
	"fmt"
	"math"

	"github.com/san-kum/mdforce/internal/cell"
	"github.com/san-kum/mdforce/internal/forcefield"
)

var twoOverSqrtPi = 2 / math.Sqrt(math.Pi)

// Reciprocal computes the reciprocal-space electrostatic energy by summing
// structure factors over all integer triples within GMax per dimension,
// excluding the zero vector. GMax bounds the reciprocal truncation and is the
// caller's accuracy/cost trade-off; cell.Cell.GMax derives it from a
// reciprocal cutoff. Cost is O(Nk*natom).
type Reciprocal struct {
	cell  *cell.Cell
	alpha float64
	gmax  [3]int
}

func NewReciprocal(c *cell.Cell, alpha float64, gmax [3]int) (*Reciprocal, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("ewald: alpha %g: %w", alpha, forcefield.ErrParameterBounds)
	}
	return &Reciprocal{cell: c, alpha: alpha, gmax: gmax}, nil
}

func (r *Reciprocal) Alpha() float64 { return r.alpha }
func (r *Reciprocal) GMax() [3]int   { return r.gmax }

// Compute returns the reciprocal-space energy for the given positions and
// charges, adding dE/dx into acc when gradients are requested. This routine
// produces no virial; the reciprocal-space virial is the caller's concern.
func (r *Reciprocal) Compute(pos, charges []float64, acc *forcefield.Accumulator) float64 {
	natom := len(charges)
	energy := 0.0
	fac1 := 2 * math.Pi / r.cell.Volume()
	fac2 := 0.25 / (r.alpha * r.alpha)
	gvecs := r.cell.Gvecs()

	// Per-atom 2*q*cos(k.r) and -2*q*sin(k.r), reused by the gradient pass.
	var work []float64
	if acc.WantGradient() {
		work = make([]float64, 2*natom)
	}

	for j0 := -r.gmax[0]; j0 <= r.gmax[0]; j0++ {
		for j1 := -r.gmax[1]; j1 <= r.gmax[1]; j1++ {
			for j2 := -r.gmax[2]; j2 <= r.gmax[2]; j2++ {
				if j0 == 0 && j1 == 0 && j2 == 0 {
					continue
				}
				var k [3]float64
				for d := 0; d < 3; d++ {
					k[d] = 2 * math.Pi * (float64(j0)*gvecs[d] + float64(j1)*gvecs[3+d] + float64(j2)*gvecs[6+d])
				}
				ksq := k[0]*k[0] + k[1]*k[1] + k[2]*k[2]

				cosfac := 0.0
				sinfac := 0.0
				for i := 0; i < natom; i++ {
					x := k[0]*pos[3*i] + k[1]*pos[3*i+1] + k[2]*pos[3*i+2]
					c := charges[i] * math.Cos(x)
					s := charges[i] * math.Sin(x)
					cosfac += c
					sinfac += s
					if work != nil {
						work[2*i] = 2 * c
						work[2*i+1] = -2 * s
					}
				}

				w := fac1 * math.Exp(-ksq*fac2) / ksq
				energy += w * (cosfac*cosfac + sinfac*sinfac)

				if work != nil {
					for i := 0; i < natom; i++ {
						x := w * (cosfac*work[2*i+1] + sinfac*work[2*i])
						acc.Gradient[3*i] += k[0] * x
						acc.Gradient[3*i+1] += k[1] * x
						acc.Gradient[3*i+2] += k[2] * x
					}
				}
			}
		}
	}
	return energy
}

// ReciprocalTerm binds a Reciprocal to one system for force-field
// aggregation.
type ReciprocalTerm struct {
	Reci    *Reciprocal
	Pos     []float64
	Charges []float64
}

func (t *ReciprocalTerm) Name() string { return "ewald_reci" }

func (t *ReciprocalTerm) Compute(acc *forcefield.Accumulator) (float64, error) {
	return t.Reci.Compute(t.Pos, t.Charges, acc), nil
}
