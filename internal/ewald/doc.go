// Package ewald implements the long-range half of the Ewald electrostatic
// summation:
//
//   - [Reciprocal]: the reciprocal-space sum over a finite grid of k vectors
//   - [Correction]: the Gaussian self-energy and the real-space correction
//     that cancels the reciprocal sum's treatment of excluded pairs
//   - [Neutralizing]: the uniform-background term for cells with net charge
//
// Together with the erfc-screened real-space kernel (pair.Coulomb) these
// form one total electrostatic energy that is independent of the splitting
// parameter alpha, provided all parts share the same alpha and the real- and
// reciprocal-space truncations are converged. Alpha consistency is the
// caller's responsibility.
package ewald
