// Package polynomial implements random polynomials over F_q, evaluation,
// and Lagrange interpolation at x = 0 — the algebraic layer Shamir sharing
// and Pedersen commitments are built from.
package polynomial

import (
	"github.com/evernym/secret-sharing-schemes/pkg/curve"
	"github.com/evernym/secret-sharing-schemes/pkg/party"
)

// Polynomial is an immutable, dense coefficient vector [a0, a1, ..., ad] in
// F_q, a0 being the constant term. Degree is fixed at construction.
type Polynomial struct {
	coeffs []*curve.Scalar
}

// Random samples a polynomial of the given degree with d+1 independent
// uniform coefficients.
func Random(degree int) *Polynomial {
	coeffs := make([]*curve.Scalar, degree+1)
	for i := range coeffs {
		coeffs[i] = curve.RandomScalarFromCSPRNG()
	}
	return &Polynomial{coeffs: coeffs}
}

// WithSecret samples a random polynomial of the given degree whose constant
// term is fixed to secret, so that F(0) = secret. (Shamir sharing does not
// use it: it samples with Random and takes the secret as P(0).)
func WithSecret(degree int, secret *curve.Scalar) *Polynomial {
	p := Random(degree)
	p.coeffs[0] = secret
	return p
}

// Degree returns len(coefficients) - 1.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns the coefficient vector, lowest degree first. This is
// an immutable view: callers must not mutate the returned scalars.
func (p *Polynomial) Coefficients() []*curve.Scalar {
	return p.coeffs
}

// Vandermonde returns [1, x, x^2, ..., x^(n-1)], the exponent vector that
// both Eval and Pedersen's VerifyShare multiply against a coefficient (or
// commitment) vector — sharing the exact shape is what lets VerifyShare
// express its check as a single multi-scalar-multiplication.
func Vandermonde(x *curve.Scalar, n int) []*curve.Scalar {
	out := make([]*curve.Scalar, n)
	if n == 0 {
		return out
	}
	out[0] = curve.OneScalar()
	for i := 1; i < n; i++ {
		out[i] = curve.NewScalar().Multiply(out[i-1], x)
	}
	return out
}

// Eval returns P(x). x = 0 short-circuits to the constant term; it is
// always a public evaluation point so this is not a secret-dependent
// branch.
func (p *Polynomial) Eval(x *curve.Scalar) *curve.Scalar {
	if x.IsZero() {
		return p.coeffs[0].Clone()
	}
	exp := Vandermonde(x, len(p.coeffs))
	result := curve.NewScalar()
	for i, c := range p.coeffs {
		term := curve.NewScalar().Multiply(c, exp[i])
		result.Add(result, term)
	}
	return result
}

// LagrangeBasisAt0 returns lambda_i = prod_{x in xs, x != i} x / (x - i),
// the coefficient used to interpolate P(0) from evaluations at xs. i must
// be a member of xs; xs must have distinct, non-zero identifiers (the
// participant-id invariant elsewhere in this module guarantees this, which
// is why (x - i) is never zero for x != i).
func LagrangeBasisAt0(xs []party.ID, i party.ID) *curve.Scalar {
	num := curve.OneScalar()
	den := curve.OneScalar()
	iScalar := i.Scalar()
	for _, x := range xs {
		if x == i {
			continue
		}
		xScalar := x.Scalar()
		num = curve.NewScalar().Multiply(num, xScalar)
		diff := curve.NewScalar().Subtract(xScalar, iScalar)
		den = curve.NewScalar().Multiply(den, diff)
	}
	den.Invert(den)
	return curve.NewScalar().Multiply(num, den)
}
