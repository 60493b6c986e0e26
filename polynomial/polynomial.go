// Package polynomial implements dense polynomials over PF(59).
package polynomial

import (
	"rs59/field"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Polynomial is an immutable polynomial over PF(59). Coefficients are stored
// from the highest degree term down to the constant term, without leading
// zeros. The zero polynomial is the single coefficient 0. The zero value of
// Polynomial is the zero polynomial.
type Polynomial struct {
	coefficients []field.Element
}

// New creates a polynomial from coefficients ordered from highest degree to
// lowest. Leading zeros are dropped and the slice is copied.
func New(coefficients ...field.Element) Polynomial {
	first := 0
	for first < len(coefficients)-1 && coefficients[first].IsZero() {
		first++
	}
	if first >= len(coefficients) {
		return Zero()
	}

	c := make([]field.Element, len(coefficients)-first)
	copy(c, coefficients[first:])
	return Polynomial{coefficients: c}
}

// FromInts creates a polynomial from integer coefficients ordered from the
// highest degree. Every value must be a field element.
func FromInts(values ...int) (Polynomial, error) {
	c := make([]field.Element, len(values))
	for i, v := range values {
		e, err := field.New(v)
		if err != nil {
			return Zero(), xerrors.Errorf("coefficient %d: %w", i, err)
		}
		c[i] = e
	}
	return New(c...), nil
}

// FromTerms creates a polynomial from a sparse map of power to coefficient.
// Powers that are not in the map are zero.
func FromTerms(terms map[int]field.Element) (Polynomial, error) {
	degree := 0
	for power := range terms {
		if power < 0 {
			return Zero(), xerrors.Errorf("term of power %d: %w", power, ErrNegativePower)
		}
		if power > degree {
			degree = power
		}
	}

	c := make([]field.Element, degree+1)
	for power, coefficient := range terms {
		c[degree-power] = coefficient
	}
	return New(c...), nil
}

// Monomial returns coefficient * x^degree
func Monomial(degree int, coefficient field.Element) (Polynomial, error) {
	return FromTerms(map[int]field.Element{degree: coefficient})
}

// Zero returns the zero polynomial
func Zero() Polynomial {
	return Polynomial{coefficients: []field.Element{field.Zero}}
}

// One returns the constant polynomial 1
func One() Polynomial {
	return Polynomial{coefficients: []field.Element{field.One}}
}

func (p Polynomial) coeffs() []field.Element {
	if len(p.coefficients) == 0 {
		return []field.Element{field.Zero}
	}
	return p.coefficients
}

// Coefficients returns a copy of the coefficients, highest degree first
func (p Polynomial) Coefficients() []field.Element {
	src := p.coeffs()
	c := make([]field.Element, len(src))
	copy(c, src)
	return c
}

// Degree returns the degree of p. The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	return len(p.coeffs()) - 1
}

// IsZero returns true if p is the zero polynomial
func (p Polynomial) IsZero() bool {
	c := p.coeffs()
	return len(c) == 1 && c[0].IsZero()
}

// Coefficient returns the coefficient of x^power, or zero when power is
// negative or above the degree.
func (p Polynomial) Coefficient(power int) field.Element {
	c := p.coeffs()
	if power < 0 || power >= len(c) {
		return field.Zero
	}
	return c[len(c)-1-power]
}

// Equal returns true if both polynomials have the same coefficients
func (p Polynomial) Equal(o Polynomial) bool {
	a, b := p.coeffs(), o.coeffs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// combine applies op coefficientwise after aligning both polynomials on the
// constant term.
func (p Polynomial) combine(o Polynomial, op func(a, b field.Element) field.Element) Polynomial {
	a, b := p.coeffs(), o.coeffs()
	size := len(a)
	if len(b) > size {
		size = len(b)
	}

	res := make([]field.Element, size)
	for i := 0; i < size; i++ {
		var x, y field.Element
		if j := len(a) - size + i; j >= 0 {
			x = a[j]
		}
		if j := len(b) - size + i; j >= 0 {
			y = b[j]
		}
		res[i] = op(x, y)
	}
	return New(res...)
}

// Add returns p + o
func (p Polynomial) Add(o Polynomial) Polynomial {
	return p.combine(o, field.Element.Add)
}

// Sub returns p - o
func (p Polynomial) Sub(o Polynomial) Polynomial {
	return p.combine(o, field.Element.Sub)
}

// Mul returns p * o using schoolbook convolution
func (p Polynomial) Mul(o Polynomial) Polynomial {
	a, b := p.coeffs(), o.coeffs()
	res := make([]field.Element, len(a)+len(b)-1)
	for i, x := range a {
		if x.IsZero() {
			continue
		}
		for j, y := range b {
			res[i+j] = res[i+j].Add(x.Mul(y))
		}
	}
	return New(res...)
}

// Scale returns c * p
func (p Polynomial) Scale(c field.Element) Polynomial {
	src := p.coeffs()
	res := make([]field.Element, len(src))
	for i, x := range src {
		res[i] = x.Mul(c)
	}
	return New(res...)
}

// ShiftUp returns p * x^n
func (p Polynomial) ShiftUp(n int) Polynomial {
	if p.IsZero() || n <= 0 {
		return p
	}
	src := p.coeffs()
	res := make([]field.Element, len(src)+n)
	copy(res, src)
	return Polynomial{coefficients: res}
}

// DivMod divides p by d with polynomial long division and returns the
// quotient and remainder, such that p = q*d + r and deg(r) < deg(d).
func (p Polynomial) DivMod(d Polynomial) (Polynomial, Polynomial, error) {
	if d.IsZero() {
		return Zero(), Zero(), ErrDivisionByZero
	}

	divisor := d.coeffs()
	leadInv, err := divisor[0].Inverse()
	if err != nil {
		// Unreachable, the leading coefficient of a nonzero polynomial is nonzero
		return Zero(), Zero(), xerrors.Errorf("leading coefficient: %w", err)
	}

	rem := p.Coefficients()
	if len(rem) < len(divisor) {
		return Zero(), New(rem...), nil
	}

	steps := len(rem) - len(divisor) + 1
	quotient := make([]field.Element, steps)
	for i := 0; i < steps; i++ {
		scale := rem[i].Mul(leadInv)
		quotient[i] = scale
		if scale.IsZero() {
			continue
		}
		// Eliminate the leading term of the running remainder
		for j, c := range divisor {
			rem[i+j] = rem[i+j].Sub(scale.Mul(c))
		}
	}

	return New(quotient...), New(rem[steps:]...), nil
}

// Div returns the quotient of p by d
func (p Polynomial) Div(d Polynomial) (Polynomial, error) {
	q, _, err := p.DivMod(d)
	return q, err
}

// Mod returns the remainder of p by d
func (p Polynomial) Mod(d Polynomial) (Polynomial, error) {
	_, r, err := p.DivMod(d)
	return r, err
}

// Evaluate returns p(x) using Horner's method
func (p Polynomial) Evaluate(x field.Element) field.Element {
	var acc field.Element
	for _, c := range p.coeffs() {
		acc = acc.Mul(x).Add(c)
	}
	return acc
}

// String renders p as a sum of terms, for instance "x^2 + 3x + 58"
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	c := p.coeffs()
	parts := make([]string, 0, len(c))
	for i, x := range c {
		if x.IsZero() {
			continue
		}
		power := len(c) - 1 - i

		term := ""
		if x != field.One || power == 0 {
			term = strconv.Itoa(x.Int())
		}
		switch {
		case power == 1:
			term += "x"
		case power > 1:
			term += "x^" + strconv.Itoa(power)
		}
		parts = append(parts, term)
	}
	return strings.Join(parts, " + ")
}
