package neatcore

import "github.com/pkg/errors"

// The evolution core does no I/O and therefore has no recoverable runtime
// faults. Every error it returns is a programmer error: a caller violated a
// precondition, or an invariant the genetic operators are supposed to
// maintain was found broken. None of these are meant to be retried.
var (
	// ErrBadRange is returned when a percentage argument falls outside [0, 100].
	ErrBadRange = errors.New("percentage argument out of range [0, 100]")

	// ErrBadInputLength is returned when Propagate is called with an input
	// slice whose length does not match the genome's number of input nodes.
	ErrBadInputLength = errors.New("input slice length does not match number of input nodes")

	// ErrInvariantViolation indicates a genome or registry invariant was
	// found broken: propagation could not make progress, or reproduction
	// allocation missed the population headcount. It signals corrupted
	// state upstream; callers should not attempt to repair it.
	ErrInvariantViolation = errors.New("genome or registry invariant violation")
)

// CheckPercent validates that p is a legal mutation-rate percentage, wrapping
// ErrBadRange with the offending value when it is not.
func CheckPercent(p int) error {
	if p < 0 || p > 100 {
		return errors.Wrapf(ErrBadRange, "percentage %d", p)
	}
	return nil
}
