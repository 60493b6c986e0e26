package polynomial

import "golang.org/x/xerrors"

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = xerrors.New("division by the zero polynomial")
	// ErrNegativePower is returned when a term has a negative power.
	ErrNegativePower = xerrors.New("power of a term must not be negative")
)
