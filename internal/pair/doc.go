// Package pair implements the generic pairwise-potential evaluation engine
// and the closed set of potential models it dispatches to:
//
//   - [LJ]: 12-6 Lennard-Jones
//   - [MM3]: Buckingham-like exponential repulsion with R^-6 attraction
//   - [Grimme]: damped R^-6 dispersion
//   - [ExpRep]: pure exponential repulsion with configurable mixing rules
//   - [Coulomb]: erfc-screened point-charge electrostatics, the real-space
//     half of the Ewald split
//
// Every model is a pure function of the interatomic distance; [Engine]
// iterates a precomputed neighbor list, applies exclusion scaling and the
// optional cutoff switch, and accumulates energy, gradient and virial.
//
// The kernels perform no per-call validation: a zero distance or a
// pathological parameter produces NaN/Inf that propagates into the
// accumulators, where the caller's energy monitoring can detect it.
package pair
