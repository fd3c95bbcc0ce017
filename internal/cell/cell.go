// Package cell holds the periodic simulation cell: real-space lattice
// vectors, the matching reciprocal vectors, the volume, and the
// minimum-image convention. A Cell is immutable once constructed; rebuild it
// when the cell changes.
package cell

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular indicates lattice vectors that do not span three dimensions.
var ErrSingular = errors.New("cell: lattice vectors are singular")

// Cell describes a 3D periodic cell. Rvecs rows are the real-space lattice
// vectors a, b, c; Gvecs rows are the reciprocal vectors (without the 2*pi
// factor), satisfying rvecs * gvecs^T = identity.
type Cell struct {
	rvecs  [9]float64
	gvecs  [9]float64
	volume float64
}

// New builds a Cell from the three lattice vectors given as the rows of a
// row-major 3x3 matrix.
func New(rvecs [9]float64) (*Cell, error) {
	r := mat.NewDense(3, 3, rvecs[:])
	det := mat.Det(r)
	if det == 0 || math.IsNaN(det) {
		return nil, ErrSingular
	}

	var inv mat.Dense
	if err := inv.Inverse(r); err != nil {
		return nil, ErrSingular
	}

	c := &Cell{rvecs: rvecs, volume: math.Abs(det)}
	// Rows of gvecs are columns of inv(rvecs).
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c.gvecs[3*i+j] = inv.At(j, i)
		}
	}
	return c, nil
}

// Cubic returns the cell for a cubic box with edge length l.
func Cubic(l float64) (*Cell, error) {
	return New([9]float64{l, 0, 0, 0, l, 0, 0, 0, l})
}

func (c *Cell) Volume() float64 { return c.volume }

// Rvecs returns the real-space lattice vectors, rows of a row-major 3x3.
func (c *Cell) Rvecs() [9]float64 { return c.rvecs }

// Gvecs returns the reciprocal lattice vectors (no 2*pi factor), rows of a
// row-major 3x3.
func (c *Cell) Gvecs() [9]float64 { return c.gvecs }

// GMax returns per-dimension reciprocal truncation bounds for a reciprocal
// cutoff gcut, from the lengths of the reciprocal vectors.
func (c *Cell) GMax(gcut float64) [3]int {
	var gmax [3]int
	for d := 0; d < 3; d++ {
		g := math.Sqrt(c.gvecs[3*d]*c.gvecs[3*d] + c.gvecs[3*d+1]*c.gvecs[3*d+1] + c.gvecs[3*d+2]*c.gvecs[3*d+2])
		n := int(math.Ceil(gcut/g - 0.5))
		if n < 0 {
			n = 0
		}
		gmax[d] = n
	}
	return gmax
}

// MinimumImage replaces delta with the displacement to the nearest periodic
// image: the fractional coordinates of delta are wrapped to [-1/2, 1/2). For
// strongly skewed cells this is the usual approximate convention; it is exact
// whenever the cutoff does not exceed half the smallest cell spacing.
func (c *Cell) MinimumImage(delta *[3]float64) {
	var frac [3]float64
	for d := 0; d < 3; d++ {
		frac[d] = c.gvecs[3*d]*delta[0] + c.gvecs[3*d+1]*delta[1] + c.gvecs[3*d+2]*delta[2]
		frac[d] -= math.Round(frac[d])
	}
	for k := 0; k < 3; k++ {
		delta[k] = frac[0]*c.rvecs[k] + frac[1]*c.rvecs[3+k] + frac[2]*c.rvecs[6+k]
	}
}
