// Package field implements arithmetic in the prime field PF(59).
package field

import (
	"strconv"

	"golang.org/x/xerrors"
)

// Order is the number of elements in the field.
const Order = 59

// GroupOrder is the order of the multiplicative group.
const GroupOrder = Order - 1

// Generator is the primitive element used to index the nonzero elements.
const Generator Element = 2

const (
	Zero Element = 0
	One  Element = 1
)

// Element is a member of PF(59). It is a plain value; every operation
// returns a new Element in [0, 58].
type Element uint8

// New returns the element with value v, or ErrInvalidFieldValue if v is
// outside [0, 58].
func New(v int) (Element, error) {
	if v < 0 || v >= Order {
		return Zero, xerrors.Errorf("cannot build element from %d: %w", v, ErrInvalidFieldValue)
	}
	return Element(v), nil
}

// Reduce maps any integer onto the field.
func Reduce(v int) Element {
	m := v % Order
	if m < 0 {
		m += Order
	}
	return Element(m)
}

// Int returns the underlying integer value
func (a Element) Int() int {
	return int(a)
}

// IsZero returns true if a is the additive identity
func (a Element) IsZero() bool {
	return a == Zero
}

// Add returns a + b
func (a Element) Add(b Element) Element {
	return Element((int(a) + int(b)) % Order)
}

// Sub returns a - b
func (a Element) Sub(b Element) Element {
	return Element((int(a) - int(b) + Order) % Order)
}

// Neg returns -a
func (a Element) Neg() Element {
	return Element((Order - int(a)) % Order)
}

// Mul returns a * b
func (a Element) Mul(b Element) Element {
	return Element((int(a) * int(b)) % Order)
}

// Inverse returns the unique w with a*w = 1, computed with the extended
// Euclidean algorithm.
func (a Element) Inverse() (Element, error) {
	if a.IsZero() {
		return Zero, ErrNoInverse
	}

	// Invariant: oldS*a = oldR (mod Order)
	oldR, r := int(a), Order
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	return Reduce(oldS), nil
}

// Div returns a * b^-1
func (a Element) Div(b Element) (Element, error) {
	inv, err := b.Inverse()
	if err != nil {
		return Zero, xerrors.Errorf("cannot divide %s by %s: %w", a, b, err)
	}
	return a.Mul(inv), nil
}

// Pow raises a to an integer power. A negative power p is the inverse of
// a^-p, so it fails with ErrNoInverse when a is zero.
func (a Element) Pow(p int) (Element, error) {
	if a.IsZero() {
		switch {
		case p > 0:
			return Zero, nil
		case p == 0:
			return One, nil
		default:
			return Zero, xerrors.Errorf("cannot raise %s to %d: %w", a, p, ErrNoInverse)
		}
	}

	// a^GroupOrder = 1 for nonzero a
	p %= GroupOrder
	if p < 0 {
		p += GroupOrder
	}

	result := One
	base := a
	for p > 0 {
		if p&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		p >>= 1
	}
	return result, nil
}

// Exp is Pow for exponents of dynamic type. Only Go integers are accepted:
// a field element, or anything else, as exponent fails with ErrInvalidOperand.
func (a Element) Exp(power any) (Element, error) {
	switch p := power.(type) {
	case int:
		return a.Pow(p)
	case int64:
		return a.Pow(int(p))
	case int32:
		return a.Pow(int(p))
	case Element:
		return Zero, xerrors.Errorf("cannot raise %s to %s: %w", a, p, ErrInvalidOperand)
	default:
		return Zero, xerrors.Errorf("cannot raise %s to %v (%T): %w", a, power, power, ErrInvalidOperand)
	}
}

// GeneratorPower returns Generator^l for any integer l, negative included.
// The result is never zero.
func GeneratorPower(l int) Element {
	// The generator is not zero
	res, _ := Generator.Pow(l)
	return res
}

func (a Element) String() string {
	return "PF59(" + strconv.Itoa(int(a)) + ")"
}
