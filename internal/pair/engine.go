package pair

import (
	"github.com/san-kum/mdforce/internal/forcefield"
	"github.com/san-kum/mdforce/internal/nblist"
)

// Engine evaluates one pair potential over a precomputed neighbor list. It
// owns its kernel exclusively; the cutoff and smoothing policy apply to every
// pair the kernel sees. The zero value is not ready: set a kernel and a
// positive cutoff first.
type Engine struct {
	kernel Kernel
	rcut   float64
	smooth bool
}

func NewEngine(kernel Kernel, rcut float64, smooth bool) *Engine {
	return &Engine{kernel: kernel, rcut: rcut, smooth: smooth}
}

// Ready reports whether the engine can compute: a kernel is set and the
// cutoff is positive.
func (e *Engine) Ready() bool {
	return e.kernel != nil && e.rcut > 0
}

func (e *Engine) Kernel() Kernel     { return e.kernel }
func (e *Engine) SetKernel(k Kernel) { e.kernel = k }
func (e *Engine) RCut() float64      { return e.rcut }
func (e *Engine) SetRCut(r float64)  { e.rcut = r }
func (e *Engine) Smooth() bool       { return e.smooth }
func (e *Engine) SetSmooth(on bool)  { e.smooth = on }

// Compute sums the interactions of one center atom over its neighbor rows,
// applying exclusion scaling and the optional cutoff switch, and returns the
// energy. Gradient and virial contributions are added into acc according to
// which outputs it requests. Each unordered pair is visited once across the
// whole center-atom loop by neighbor-list construction; no re-check happens
// here. rows must already be restricted to Distance <= rcut and scales sorted
// by atom index.
//
// Compute fails only on a non-ready engine. Numeric anomalies (NaN/Inf from
// degenerate geometry) propagate into the accumulators by design.
func (e *Engine) Compute(center int, rows []nblist.Row, scales []nblist.Scale, acc *forcefield.Accumulator) (float64, error) {
	if !e.Ready() {
		return 0, forcefield.ErrNotReady
	}
	energy := 0.0
	for _, row := range rows {
		s := nblist.Lookup(scales, row.Other)
		if s == 0 {
			continue
		}
		ev, g := e.kernel.Energy(center, row.Other, row.Distance)
		if e.smooth {
			sw, dsw := switchValue(row.Distance, e.rcut)
			g = g*sw + ev*dsw
			ev *= sw
		}
		energy += s * ev
		if acc.WantGradient() || acc.WantVirial() {
			acc.AddPair(center, row.Other, row.Delta, s*g/row.Distance)
		}
	}
	return energy, nil
}
