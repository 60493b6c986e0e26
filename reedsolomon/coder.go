package reedsolomon

import (
	"rs59/field"
	"rs59/logging"
	"rs59/polynomial"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// Params identifies a code by its codeword length N and message length K
type Params struct {
	N, K int
}

// Validate checks 0 <= K < N < 59
func (p Params) Validate() error {
	if p.N < 0 || p.K < 0 {
		return xerrors.Errorf("n=%d, k=%d must be positive: %w", p.N, p.K, ErrInvalidParameters)
	}
	if p.N >= field.Order {
		return xerrors.Errorf("n=%d must be lower than %d: %w", p.N, field.Order, ErrInvalidParameters)
	}
	if p.K >= p.N {
		return xerrors.Errorf("codeword length n=%d must be greater than message length k=%d: %w",
			p.N, p.K, ErrInvalidParameters)
	}
	return nil
}

// RSCoder encodes, verifies and decodes words of a (n, k) code. It holds no
// mutable state and is safe for concurrent use.
type RSCoder struct {
	n, k int
	// g(x) = (x - 2^1)...(x - 2^(n-k))
	g polynomial.Polynomial
	// h(x) = (x + 2^(n-k+1))...(x + 2^n)
	h polynomial.Polynomial
	// x^n - 1
	gTimesH polynomial.Polynomial
	log     zerolog.Logger
}

var _ Codes = (*RSCoder)(nil)

// NewRSCoder creates a coder for codewords of n symbols carrying k message
// symbols. It corrects up to (n-k)/2 errors.
func NewRSCoder(n, k int) (*RSCoder, error) {
	params := Params{N: n, K: k}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	g := polynomial.One()
	for i := 1; i <= n-k; i++ {
		g = g.Mul(polynomial.New(field.One, field.GeneratorPower(i).Neg()))
	}

	// The check polynomial uses +2^i, it is not used for verification.
	h := polynomial.One()
	for i := n - k + 1; i <= n; i++ {
		h = h.Mul(polynomial.New(field.One, field.GeneratorPower(i)))
	}

	gTimesH, err := polynomial.FromTerms(map[int]field.Element{n: field.One, 0: field.One.Neg()})
	if err != nil {
		return nil, err
	}

	return &RSCoder{
		n:       n,
		k:       k,
		g:       g,
		h:       h,
		gTimesH: gTimesH,
		log:     logging.GetLogger("reedsolomon"),
	}, nil
}

// N returns the codeword length
func (c *RSCoder) N() int {
	return c.n
}

// K returns the message length
func (c *RSCoder) K() int {
	return c.k
}

// Params returns the parameters of the code
func (c *RSCoder) Params() Params {
	return Params{N: c.n, K: c.k}
}

// Capacity returns the number of errors the code corrects
func (c *RSCoder) Capacity() int {
	return (c.n - c.k) / 2
}

// Generator returns the generator polynomial g
func (c *RSCoder) Generator() polynomial.Polynomial {
	return c.g
}

// Check returns the check polynomial h
func (c *RSCoder) Check() polynomial.Polynomial {
	return c.h
}

// CyclicModulus returns x^n - 1
func (c *RSCoder) CyclicModulus() polynomial.Polynomial {
	return c.gTimesH
}
