package core

import "github.com/pkg/errors"

// The kernel's error taxonomy. Every mutating entry point returns one of
// these (or nil) as its final result; none of them panic on a
// well-formed, already-validated *Int.
var (
	ErrOutOfMemory          = errors.New("bigkernel: out of memory")
	ErrDivisionByZero       = errors.New("bigkernel: division by zero")
	ErrInvalidArgument      = errors.New("bigkernel: invalid argument")
	ErrMathDomain           = errors.New("bigkernel: math domain error")
	ErrAssignToImmutable    = errors.New("bigkernel: assignment to immutable int")
	ErrMaxIterationsReached = errors.New("bigkernel: max iterations reached")
)

// checkDest rejects a destination flagged Immutable. Every mutating
// routine calls this before touching dest.
func checkDest(dest *Int) error {
	if dest.Immutable() {
		return errors.WithStack(ErrAssignToImmutable)
	}
	return nil
}
