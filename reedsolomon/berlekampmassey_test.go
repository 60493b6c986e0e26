package reedsolomon

import (
	"rs59/field"
	"rs59/polynomial"
	"rs59/symbols"
	"testing"

	"github.com/stretchr/testify/require"
)

func receivedPoly(t *testing.T, word string) polynomial.Polynomial {
	elements, err := symbols.Decode(word)
	require.NoError(t, err)
	return polynomial.New(elements...)
}

// truncate keeps the terms of p below z^size
func truncate(t *testing.T, p polynomial.Polynomial, size int) polynomial.Polynomial {
	terms := make(map[int]field.Element)
	for i := 0; i < size; i++ {
		terms[i] = p.Coefficient(i)
	}
	res, err := polynomial.FromTerms(terms)
	require.NoError(t, err)
	return res
}

// TestSyndromes_Codeword checks that a codeword has zero syndromes and that
// a corrupted word does not
func TestSyndromes_Codeword(t *testing.T) {
	coder := newCoder(t)
	code, err := coder.Encode(message)
	require.NoError(t, err)

	require.True(t, coder.syndromes(receivedPoly(t, code)).IsZero())

	s := coder.syndromes(receivedPoly(t, corrupt(t, code, 4, 10)))
	require.Equal(t, field.Zero, s.Coefficient(0))
	for l := 1; l <= 12; l++ {
		// One error of magnitude 4 at power 47: s_l = 4 * 2^(47*l)
		require.Equal(t, field.Element(4).Mul(field.GeneratorPower(47*l)), s.Coefficient(l))
	}
}

// TestBerlekampMassey_KeyEquation checks (1 + s)*sigma = omega mod z^(l+1)
// at every step, and the final degrees
func TestBerlekampMassey_KeyEquation(t *testing.T) {
	coder := newCoder(t)
	code, err := coder.Encode(message)
	require.NoError(t, err)

	r := receivedPoly(t, corrupt(t, code, 7, 3, 20, 41))
	s := coder.syndromes(r)
	steps := berlekampMassey(s, 12)
	require.Len(t, steps, 13)

	first := steps[0]
	require.True(t, first.sigma.Equal(polynomial.One()))
	require.True(t, first.omega.Equal(polynomial.One()))
	require.True(t, first.tau.Equal(polynomial.One()))
	require.True(t, first.gamma.IsZero())
	require.Equal(t, 0, first.d)
	require.Equal(t, 0, first.b)

	onePlusS := polynomial.One().Add(s)
	for l := 1; l < len(steps); l++ {
		step := steps[l]
		lhs := truncate(t, onePlusS.Mul(step.sigma), l+1)
		require.True(t, lhs.Equal(truncate(t, step.omega, l+1)), "step %d", l)
		require.Equal(t, onePlusS.Mul(steps[l-1].sigma).Coefficient(l), step.delta)
		require.Contains(t, []int{0, 1}, step.b)
	}

	last := steps[len(steps)-1]
	require.Equal(t, 3, last.d)
	require.Equal(t, 3, last.sigma.Degree())
	require.Equal(t, field.One, last.sigma.Coefficient(0))
}

// TestBerlekampMassey_SingleError checks the closed form for one error of
// magnitude Y at location X: sigma = 1 - X*z and omega = 1 + (Y-1)*X*z
func TestBerlekampMassey_SingleError(t *testing.T) {
	coder := newCoder(t)
	code, err := coder.Encode(message)
	require.NoError(t, err)

	// Index 50 is the coefficient of x^7
	r := receivedPoly(t, corrupt(t, code, 9, 50))
	steps := berlekampMassey(coder.syndromes(r), 12)
	last := steps[len(steps)-1]

	X := field.GeneratorPower(7)
	Y := field.Element(9)
	require.True(t, last.sigma.Equal(polynomial.New(X.Neg(), field.One)), "sigma=%s", last.sigma)
	require.True(t, last.omega.Equal(polynomial.New(Y.Sub(field.One).Mul(X), field.One)), "omega=%s", last.omega)

	locations, powers := coder.chienSearch(last.sigma)
	require.Equal(t, []field.Element{X}, locations)
	require.Equal(t, []int{7}, powers)
	require.Equal(t, []field.Element{Y}, coder.forney(last.omega, locations))
}

// TestBerlekampMassey_NoErrors checks that zero syndromes keep sigma = 1
func TestBerlekampMassey_NoErrors(t *testing.T) {
	steps := berlekampMassey(polynomial.Zero(), 12)
	for _, step := range steps {
		require.True(t, step.sigma.Equal(polynomial.One()))
		require.True(t, step.omega.Equal(polynomial.One()))
		require.Equal(t, 0, step.d)
		require.Equal(t, field.Zero, step.delta)
	}
	require.Equal(t, 12, steps[12].tau.Degree())
}

// TestUseUpdateRule checks the tie break between both rules
func TestUseUpdateRule(t *testing.T) {
	// Zero discrepancy never updates
	require.False(t, useUpdateRule(field.Zero, 0, 1, 0))
	// 2D > l+1
	require.False(t, useUpdateRule(5, 2, 1, 2))
	// 2D < l+1
	require.True(t, useUpdateRule(5, 1, 0, 2))
	// 2D == l+1, decided by B
	require.False(t, useUpdateRule(5, 2, 0, 3))
	require.True(t, useUpdateRule(5, 2, 1, 3))
}

// TestChienSearch_LastPosition checks that an error on the last symbol, the
// root 2^58 = 1, is found
func TestChienSearch_LastPosition(t *testing.T) {
	coder := newCoder(t)
	sigma := polynomial.New(field.Element(58), field.One) // 1 - z
	locations, powers := coder.chienSearch(sigma)
	require.Equal(t, []field.Element{field.One}, locations)
	require.Equal(t, []int{0}, powers)
}
