package reedsolomon

import (
	"rs59/field"
	"rs59/polynomial"
)

// bmStep is the state of the Berlekamp-Massey solver at one iteration. The
// invariant kept by step l+1 is (1 + s)*sigma = omega mod z^(l+1).
type bmStep struct {
	// error locator and error evaluator candidates
	sigma, omega polynomial.Polynomial
	// auxiliary polynomials used to update sigma and omega
	tau, gamma polynomial.Polynomial
	d, b       int
	// discrepancy computed from the previous step, zero for the first step
	delta field.Element
}

// useUpdateRule decides how tau and gamma are carried to the next step.
func useUpdateRule(delta field.Element, d, b, l int) bool {
	switch {
	case delta.IsZero() || 2*d > l+1:
		return false
	case 2*d < l+1:
		return true
	default:
		// 2*d == l+1
		return b == 1
	}
}

// berlekampMassey runs the given number of iterations on the syndrome
// polynomial s and returns every step, the initial one included. The last
// step holds the error locator and error evaluator polynomials.
func berlekampMassey(s polynomial.Polynomial, iterations int) []bmStep {
	one := polynomial.One()
	onePlusS := one.Add(s)

	history := make([]bmStep, 1, iterations+1)
	history[0] = bmStep{sigma: one, omega: one, tau: one, gamma: polynomial.Zero()}

	for l := 0; l < iterations; l++ {
		cur := history[l]
		delta := onePlusS.Mul(cur.sigma).Coefficient(l + 1)

		next := bmStep{
			sigma: cur.sigma.Sub(cur.tau.ShiftUp(1).Scale(delta)),
			omega: cur.omega.Sub(cur.gamma.ShiftUp(1).Scale(delta)),
			delta: delta,
		}

		if useUpdateRule(delta, cur.d, cur.b, l) {
			// delta is not zero here
			inv, _ := delta.Inverse()
			next.d = l + 1 - cur.d
			next.b = 1 - cur.b
			next.tau = cur.sigma.Scale(inv)
			next.gamma = cur.omega.Scale(inv)
		} else {
			next.d = cur.d
			next.b = cur.b
			next.tau = cur.tau.ShiftUp(1)
			next.gamma = cur.gamma.ShiftUp(1)
		}

		history = append(history, next)
	}

	return history
}
