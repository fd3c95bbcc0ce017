package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/mdforce/internal/cell"
	"github.com/san-kum/mdforce/internal/ewald"
	"github.com/san-kum/mdforce/internal/forcefield"
	"github.com/san-kum/mdforce/internal/nblist"
	"github.com/san-kum/mdforce/internal/pair"
)

// BuildCell constructs the periodic cell from the configured lattice vectors.
func (c *Config) BuildCell() (*cell.Cell, error) {
	if len(c.Cell) != 3 {
		return nil, fmt.Errorf("config: want 3 cell vectors, got %d", len(c.Cell))
	}
	var rvecs [9]float64
	for i, row := range c.Cell {
		if len(row) != 3 {
			return nil, fmt.Errorf("config: cell vector %d has %d components", i, len(row))
		}
		copy(rvecs[3*i:], row)
	}
	return cell.New(rvecs)
}

// FlatPositions returns the positions as one flat x0,y0,z0,x1,... slice.
func (c *Config) FlatPositions() ([]float64, error) {
	pos := make([]float64, 0, 3*len(c.Positions))
	for i, p := range c.Positions {
		if len(p) != 3 {
			return nil, fmt.Errorf("config: position %d has %d components", i, len(p))
		}
		pos = append(pos, p[0], p[1], p[2])
	}
	return pos, nil
}

// ScaleRows expands the pair scalings into per-center rows sorted by atom
// index, the layout the engine and the Ewald correction consume. Each
// configured pair appears in both atoms' rows.
func (c *Config) ScaleRows() [][]nblist.Scale {
	if len(c.Scalings) == 0 {
		return nil
	}
	rows := make([][]nblist.Scale, c.NumAtoms())
	for _, s := range c.Scalings {
		rows[s.I] = append(rows[s.I], nblist.Scale{Other: s.J, Scale: s.Scale})
		rows[s.J] = append(rows[s.J], nblist.Scale{Other: s.I, Scale: s.Scale})
	}
	for i := range rows {
		sort.Slice(rows[i], func(a, b int) bool { return rows[i][a].Other < rows[i][b].Other })
	}
	return rows
}

// BuildKernel constructs one pair kernel from its configuration, checking
// that every parameter array covers all atoms.
func (c *Config) BuildKernel(k Kernel) (pair.Kernel, error) {
	natom := c.NumAtoms()
	check := func(name string, n int) error {
		if n != natom {
			return fmt.Errorf("config: kernel %s: %s has %d entries for %d atoms: %w",
				k.Type, name, n, natom, forcefield.ErrDimensionMismatch)
		}
		return nil
	}

	switch k.Type {
	case "lj":
		if err := check("sigma", len(k.Sigma)); err != nil {
			return nil, err
		}
		if err := check("epsilon", len(k.Epsilon)); err != nil {
			return nil, err
		}
		return pair.NewLJ(k.Sigma, k.Epsilon), nil

	case "mm3":
		if err := check("sigma", len(k.Sigma)); err != nil {
			return nil, err
		}
		if err := check("epsilon", len(k.Epsilon)); err != nil {
			return nil, err
		}
		if k.OnlyPauli != nil {
			if err := check("only_pauli", len(k.OnlyPauli)); err != nil {
				return nil, err
			}
		}
		return pair.NewMM3(k.Sigma, k.Epsilon, k.OnlyPauli), nil

	case "grimme":
		if err := check("r0", len(k.R0)); err != nil {
			return nil, err
		}
		if err := check("c6", len(k.C6)); err != nil {
			return nil, err
		}
		return pair.NewGrimme(k.R0, k.C6), nil

	case "exprep":
		if err := check("amp", len(k.Amp)); err != nil {
			return nil, err
		}
		if err := check("b", len(k.B)); err != nil {
			return nil, err
		}
		ampMix, err := parseAmpMix(k.AmpMix)
		if err != nil {
			return nil, err
		}
		bMix, err := parseBMix(k.BMix)
		if err != nil {
			return nil, err
		}
		return pair.NewExpRep(k.Amp, ampMix, k.AmpMixCoeff, k.B, bMix, k.BMixCoeff), nil

	case "coulomb":
		if err := check("charges", len(c.Charges)); err != nil {
			return nil, err
		}
		return pair.NewCoulomb(c.Charges, c.Alpha), nil

	default:
		return nil, fmt.Errorf("config: unknown kernel type %q", k.Type)
	}
}

func parseAmpMix(s string) (pair.AmpMix, error) {
	switch s {
	case "", "geometric":
		return pair.AmpMixGeometric, nil
	case "geometric_corr":
		return pair.AmpMixGeometricCorr, nil
	}
	return 0, fmt.Errorf("config: unknown amp_mix %q", s)
}

func parseBMix(s string) (pair.BMix, error) {
	switch s {
	case "", "arithmetic":
		return pair.BMixArithmetic, nil
	case "arithmetic_corr":
		return pair.BMixArithmeticCorr, nil
	}
	return 0, fmt.Errorf("config: unknown b_mix %q", s)
}

// BuildForceField assembles the complete force field for the configured
// system: one pair term per kernel over a freshly built neighbor list, and
// the three long-range Ewald terms whenever a coulomb kernel is declared.
func (c *Config) BuildForceField() (*forcefield.ForceField, error) {
	cl, err := c.BuildCell()
	if err != nil {
		return nil, err
	}
	pos, err := c.FlatPositions()
	if err != nil {
		return nil, err
	}
	rows := nblist.Build(pos, cl, c.RCut, c.MaxImage)
	scales := c.ScaleRows()

	ff := forcefield.New()
	electrostatic := false
	for _, k := range c.Kernels {
		kernel, err := c.BuildKernel(k)
		if err != nil {
			return nil, err
		}
		if k.Type == "coulomb" {
			electrostatic = true
		}
		term := pair.NewTerm(pair.NewEngine(kernel, c.RCut, c.Smooth), rows, scales)
		term.Workers = c.Workers
		ff.Add(term)
	}

	if electrostatic {
		reci, err := ewald.NewReciprocal(cl, c.Alpha, cl.GMax(c.GCut))
		if err != nil {
			return nil, err
		}
		corr, err := ewald.NewCorrection(cl, c.Alpha)
		if err != nil {
			return nil, err
		}
		neut, err := ewald.NewNeutralizing(cl, c.Alpha)
		if err != nil {
			return nil, err
		}
		ff.Add(&ewald.ReciprocalTerm{Reci: reci, Pos: pos, Charges: c.Charges})
		ff.Add(&ewald.CorrectionTerm{Corr: corr, Pos: pos, Charges: c.Charges, Scales: scales, Workers: c.Workers})
		ff.Add(&ewald.NeutralizingTerm{Neut: neut, Charges: c.Charges})
	}
	return ff, nil
}
