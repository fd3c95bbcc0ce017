// Package nblist defines the neighbor-list and exclusion-scaling contracts
// consumed by the pair and ewald packages, plus a reference pair enumerator
// for drivers and tests. The compute kernels only ever read [Row] and [Scale]
// slices; they never build lists themselves.
package nblist

import (
	"math"
	"sort"

	"github.com/san-kum/mdforce/internal/cell"
)

// Row is one neighbor-list entry for a center atom: the other atom's index,
// the periodic-image displacement from the center atom to the other atom, and
// its norm. Rows are produced already filtered to Distance <= rcut, free of
// duplicates and of zero-separation self pairs.
type Row struct {
	Other    int
	Distance float64
	// Delta points from the center atom to the (possibly image) position of
	// the other atom.
	Delta [3]float64
}

// Scale attenuates the nonbonded interaction between a center atom and a
// topologically bonded-or-near atom. Scale 1 means the full interaction is
// kept, 0 means it is fully excluded. Derived from the bonded topology by the
// caller; consumed read-only here.
type Scale struct {
	Other int
	Scale float64
}

// Lookup returns the scale factor that applies to the pair (center, other):
// the entry's value if other appears in scales, 1 otherwise. scales must be
// sorted by Other.
func Lookup(scales []Scale, other int) float64 {
	n := sort.Search(len(scales), func(k int) bool { return scales[k].Other >= other })
	if n < len(scales) && scales[n].Other == other {
		return scales[n].Scale
	}
	return 1.0
}

// Build enumerates every atom pair within rcut under periodic boundary
// conditions, visiting each unordered pair (including pairs of an atom with
// its own periodic images) exactly once, and groups the rows by center atom.
// Image shifts up to maxImage cells per dimension are scanned, so rcut may
// exceed half the shortest cell vector. This is the reference list builder
// used by the CLI driver and the tests; production callers may substitute any
// list that honors the Row contract.
func Build(pos []float64, c *cell.Cell, rcut float64, maxImage int) [][]Row {
	natom := len(pos) / 3
	rows := make([][]Row, natom)
	rvecs := c.Rvecs()

	for n0 := -maxImage; n0 <= maxImage; n0++ {
		for n1 := -maxImage; n1 <= maxImage; n1++ {
			for n2 := -maxImage; n2 <= maxImage; n2++ {
				// Visit each shift once: strictly positive in lexicographic
				// order, plus the central cell with j < i below.
				central := n0 == 0 && n1 == 0 && n2 == 0
				if !central && !lexPositive(n0, n1, n2) {
					continue
				}
				var shift [3]float64
				for k := 0; k < 3; k++ {
					shift[k] = float64(n0)*rvecs[k] + float64(n1)*rvecs[3+k] + float64(n2)*rvecs[6+k]
				}
				for i := 0; i < natom; i++ {
					jmax := natom
					if central {
						jmax = i
					}
					for j := 0; j < jmax; j++ {
						delta := [3]float64{
							pos[3*j] + shift[0] - pos[3*i],
							pos[3*j+1] + shift[1] - pos[3*i+1],
							pos[3*j+2] + shift[2] - pos[3*i+2],
						}
						d := math.Sqrt(delta[0]*delta[0] + delta[1]*delta[1] + delta[2]*delta[2])
						if d > rcut || d == 0 {
							continue
						}
						rows[i] = append(rows[i], Row{Other: j, Distance: d, Delta: delta})
					}
				}
			}
		}
	}
	return rows
}

func lexPositive(n0, n1, n2 int) bool {
	if n0 != 0 {
		return n0 > 0
	}
	if n1 != 0 {
		return n1 > 0
	}
	return n2 > 0
}
