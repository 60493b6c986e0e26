package field

import "golang.org/x/xerrors"

var (
	// ErrInvalidFieldValue is returned when an integer outside [0, Order-1] is
	// turned into an Element.
	ErrInvalidFieldValue = xerrors.New("value is not an element of PF(59)")
	// ErrNoInverse is returned when the inverse of zero is requested.
	ErrNoInverse = xerrors.New("zero has no multiplicative inverse")
	// ErrInvalidOperand is returned when a field element is used as an exponent.
	ErrInvalidOperand = xerrors.New("exponent must be an integer, not a field element")
)
