package reedsolomon

import (
	"rs59/field"
	"rs59/polynomial"
	"rs59/symbols"

	"golang.org/x/xerrors"
)

// Decode returns the message carried by word, correcting up to (n-k)/2
// errors. Leading zero symbols are stripped unless preserveWidth is set.
//
// With more errors than the code can correct, the result is silently wrong.
func (c *RSCoder) Decode(word string, preserveWidth bool) (string, error) {
	corr, err := c.Correct(word)
	if err != nil {
		return "", err
	}
	return c.Message(corr.Codeword, preserveWidth), nil
}

// DecodeStrict is Decode, but verifies the corrected word and returns
// ErrUncorrectable if it is not a codeword.
func (c *RSCoder) DecodeStrict(word string, preserveWidth bool) (string, error) {
	corr, err := c.Correct(word)
	if err != nil {
		return "", err
	}
	ok, err := c.Verify(corr.Codeword)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", xerrors.Errorf("%d errors located, codeword still invalid: %w",
			len(corr.Errors), ErrUncorrectable)
	}
	return c.Message(corr.Codeword, preserveWidth), nil
}

// Correct runs error correction on word. A word that is already a codeword
// is returned as is, with no errors.
func (c *RSCoder) Correct(word string) (Correction, error) {
	r, err := c.received(word)
	if err != nil {
		return Correction{}, err
	}
	if c.verifyPoly(r) {
		return Correction{Codeword: word}, nil
	}

	s := c.syndromes(r)
	steps := berlekampMassey(s, c.n-c.k)
	last := steps[len(steps)-1]

	X, j := c.chienSearch(last.sigma)
	Y := c.forney(last.omega, X)

	terms := make(map[int]field.Element, len(j))
	errs := make([]SymbolError, 0, len(j))
	for i, power := range j {
		if power >= c.n {
			c.log.Debug().Int("power", power).Msg("error located outside of the codeword")
			continue
		}
		terms[power] = Y[i]
		errs = append(errs, SymbolError{
			Index:     c.n - 1 - power,
			Power:     power,
			Magnitude: Y[i],
		})
	}

	if len(j) != last.sigma.Degree() || len(j) > c.Capacity() {
		c.log.Debug().
			Int("roots", len(j)).
			Int("locatorDegree", last.sigma.Degree()).
			Msg("error locator does not split, result may be wrong")
	}

	e, err := polynomial.FromTerms(terms)
	if err != nil {
		return Correction{}, err
	}
	corrected := r.Sub(e)
	cw, err := symbols.Encode(corrected.Coefficients())
	if err != nil {
		return Correction{}, err
	}

	c.log.Debug().Int("errors", len(errs)).Ints("powers", j).Msg("corrected word")

	return Correction{
		Codeword: symbols.PadLeft(cw, c.n),
		Errors:   errs,
	}, nil
}

// syndromes returns s(z) = s_1*z + ... + s_(n-k)*z^(n-k) where s_l is the
// received polynomial evaluated at 2^l.
func (c *RSCoder) syndromes(r polynomial.Polynomial) polynomial.Polynomial {
	size := c.n - c.k
	coeffs := make([]field.Element, size+1)
	for l := 1; l <= size; l++ {
		coeffs[size-l] = r.Evaluate(field.GeneratorPower(l))
	}
	return polynomial.New(coeffs...)
}

// chienSearch evaluates sigma on every nonzero element to find its roots.
// A root 2^l gives the error location X = 2^-l at power j = 58 - l.
func (c *RSCoder) chienSearch(sigma polynomial.Polynomial) ([]field.Element, []int) {
	X := make([]field.Element, 0)
	j := make([]int, 0)
	for l := 1; l <= field.GroupOrder; l++ {
		if sigma.Evaluate(field.GeneratorPower(l)).IsZero() {
			X = append(X, field.GeneratorPower(-l))
			j = append(j, field.GroupOrder-l)
		}
	}
	return X, j
}

// forney computes the error magnitudes
// Y_i = omega(X_i^-1) / prod_(m != i) (1 - X_m * X_i^-1)
func (c *RSCoder) forney(omega polynomial.Polynomial, X []field.Element) []field.Element {
	Y := make([]field.Element, len(X))
	for i, xi := range X {
		// Locations are powers of the generator, never zero
		xiInv, _ := xi.Inverse()

		prod := field.One
		for m, xm := range X {
			if m != i {
				prod = prod.Mul(field.One.Sub(xm.Mul(xiInv)))
			}
		}
		// Locations are distinct, so no factor is zero
		prodInv, _ := prod.Inverse()

		Y[i] = omega.Evaluate(xiInv).Mul(prodInv)
	}
	return Y
}
