package forcefield

import "errors"

// Domain errors for energy evaluation.
var (
	// ErrNotReady indicates a compute call on an engine that has no kernel
	// or a non-positive cutoff. This is a caller bug: halt instead of
	// computing garbage.
	ErrNotReady = errors.New("forcefield: engine not ready (missing kernel or non-positive cutoff)")

	// ErrParameterBounds indicates a configuration parameter outside its
	// valid range, detected at construction time.
	ErrParameterBounds = errors.New("forcefield: parameter out of valid bounds")

	// ErrDimensionMismatch indicates accumulators or parameter arrays whose
	// sizes disagree with the number of atoms.
	ErrDimensionMismatch = errors.New("forcefield: dimension mismatch")
)

// TermError wraps an error with the name of the term that produced it.
type TermError struct {
	Term    string
	Wrapped error
}

func (e *TermError) Error() string {
	return e.Term + ": " + e.Wrapped.Error()
}

func (e *TermError) Unwrap() error {
	return e.Wrapped
}
