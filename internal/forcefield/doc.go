// Package forcefield provides the core primitives shared by every nonbonded
// energy term in mdforce:
//
//   - [Accumulator]: gradient and virial accumulation for one evaluation pass
//   - [Term]: interface for anything that adds energy into an Accumulator
//   - [ForceField]: additive aggregation of terms into a single total
//   - [ComputeCenters]: parallel decomposition over center atoms
//
// # Example
//
//	acc := forcefield.NewAccumulator(natom, true, true)
//	ff := forcefield.New(pairTerm, reciTerm, corrTerm)
//	res, _ := ff.Compute(acc)
//
// # Thread Safety
//
// Terms and kernels are read-only during a compute call and may be shared by
// concurrent callers. Accumulators are not safe for concurrent mutation; use
// [ComputeCenters], which gives each worker a private Accumulator and reduces
// the partials at the end.
package forcefield
