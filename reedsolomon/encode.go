package reedsolomon

import (
	"rs59/polynomial"
	"rs59/symbols"

	"golang.org/x/xerrors"
)

// Encode returns the codeword of msg: the k message symbols followed by n-k
// parity symbols. Messages shorter than k are left padded with the zero
// symbol.
func (c *RSCoder) Encode(msg string) (string, error) {
	cw, err := c.EncodePoly(msg)
	if err != nil {
		return "", err
	}

	word, err := symbols.Encode(cw.Coefficients())
	if err != nil {
		return "", err
	}
	return symbols.PadLeft(word, c.n), nil
}

// EncodePoly is Encode returning the codeword polynomial, which is a
// multiple of the generator polynomial.
func (c *RSCoder) EncodePoly(msg string) (polynomial.Polynomial, error) {
	// Every symbol is a single byte once decoded
	elements, err := symbols.Decode(msg)
	if err != nil {
		return polynomial.Zero(), xerrors.Errorf("cannot encode message: %w", err)
	}
	if len(elements) > c.k {
		return polynomial.Zero(), xerrors.Errorf("message length is max %d, got %d: %w",
			c.k, len(elements), ErrMessageTooLong)
	}
	m := polynomial.New(elements...)

	// Shift the message up by n-k, then mprime = q*g + b for some q
	mprime := m.ShiftUp(c.n - c.k)
	b, err := mprime.Mod(c.g)
	if err != nil {
		return polynomial.Zero(), err
	}

	// mprime - b = q*g
	return mprime.Sub(b), nil
}

// Verify returns true if word is a codeword, that is a multiple of the
// generator polynomial.
func (c *RSCoder) Verify(word string) (bool, error) {
	r, err := c.received(word)
	if err != nil {
		return false, err
	}
	return c.verifyPoly(r), nil
}

func (c *RSCoder) verifyPoly(r polynomial.Polynomial) bool {
	rem, err := r.Mod(c.g)
	// g is never zero
	return err == nil && rem.IsZero()
}

// received parses a word of n symbols
func (c *RSCoder) received(word string) (polynomial.Polynomial, error) {
	if len(word) != c.n {
		return polynomial.Zero(), xerrors.Errorf("expected %d symbols, got %d: %w",
			c.n, len(word), ErrInvalidLength)
	}
	elements, err := symbols.Decode(word)
	if err != nil {
		return polynomial.Zero(), xerrors.Errorf("cannot read word: %w", err)
	}
	return polynomial.New(elements...), nil
}

// Message returns the k message symbols of codeword, without the leading
// zero symbols unless preserveWidth is set.
func (c *RSCoder) Message(codeword string, preserveWidth bool) string {
	msg := symbols.PadLeft(codeword, c.n)[:c.k]
	if preserveWidth {
		return msg
	}
	return symbols.StripLeft(msg)
}
