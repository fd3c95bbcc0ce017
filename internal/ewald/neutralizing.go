package ewald

import (
	"fmt"
	"math"

	"github.com/san-kum/mdforce/internal/cell"
	"github.com/san-kum/mdforce/internal/forcefield"
)

// Neutralizing compensates a net cell charge with a uniform background
//
//	e = -pi*Q^2/(2*V*alpha^2),  Q = sum of charges
//
// keeping the three-part Ewald total alpha independent for charged cells.
// The energy depends on the cell volume only, so the gradient vanishes and
// the virial contribution is -e on the diagonal. Zero for neutral systems.
type Neutralizing struct {
	cell  *cell.Cell
	alpha float64
}

func NewNeutralizing(c *cell.Cell, alpha float64) (*Neutralizing, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("ewald: alpha %g: %w", alpha, forcefield.ErrParameterBounds)
	}
	return &Neutralizing{cell: c, alpha: alpha}, nil
}

func (n *Neutralizing) Compute(charges []float64, acc *forcefield.Accumulator) float64 {
	q := 0.0
	for _, c := range charges {
		q += c
	}
	fac := math.Pi * q * q / (2 * n.cell.Volume() * n.alpha * n.alpha)
	if acc.WantVirial() {
		acc.Virial[0] += fac
		acc.Virial[4] += fac
		acc.Virial[8] += fac
	}
	return -fac
}

// NeutralizingTerm binds a Neutralizing to one system's charges.
type NeutralizingTerm struct {
	Neut    *Neutralizing
	Charges []float64
}

func (t *NeutralizingTerm) Name() string { return "ewald_neut" }

func (t *NeutralizingTerm) Compute(acc *forcefield.Accumulator) (float64, error) {
	return t.Neut.Compute(t.Charges, acc), nil
}
