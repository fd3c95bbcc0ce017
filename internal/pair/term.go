package pair

import (
	"github.com/san-kum/mdforce/internal/forcefield"
	"github.com/san-kum/mdforce/internal/nblist"
)

// Term adapts an Engine to the forcefield.Term interface by looping it over
// all center atoms. Rows holds the neighbor rows per center atom; Scales may
// be nil (no exclusions) or hold the scaling rows per center atom. Workers
// controls the parallel decomposition over centers (<= 1 means serial).
type Term struct {
	Engine  *Engine
	Rows    [][]nblist.Row
	Scales  [][]nblist.Scale
	Workers int
}

func NewTerm(engine *Engine, rows [][]nblist.Row, scales [][]nblist.Scale) *Term {
	return &Term{Engine: engine, Rows: rows, Scales: scales}
}

func (t *Term) Name() string {
	if t.Engine == nil || t.Engine.Kernel() == nil {
		return "pair"
	}
	return "pair_" + t.Engine.Kernel().Name()
}

func (t *Term) Compute(acc *forcefield.Accumulator) (float64, error) {
	return forcefield.ComputeCenters(len(t.Rows), t.Workers, acc, func(center int, acc *forcefield.Accumulator) (float64, error) {
		var scales []nblist.Scale
		if t.Scales != nil {
			scales = t.Scales[center]
		}
		return t.Engine.Compute(center, t.Rows[center], scales, acc)
	})
}
