package pair

import "math"

// Kernel is one closed-form pairwise potential model. Energy evaluates the
// pair (i, j) at distance d and returns the energy together with the radial
// derivative dE/dr; the engine projects the derivative onto the displacement
// vector. Implementations are immutable after construction and hold their
// parameters as flat arrays indexed by atom index.
//
// The set of kernels is closed: the five models in this package are the only
// implementations.
type Kernel interface {
	Name() string
	Energy(i, j int, d float64) (e, g float64)

	kernel()
}

var twoOverSqrtPi = 2 / math.Sqrt(math.Pi)
