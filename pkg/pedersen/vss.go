// Package pedersen implements Pedersen Verifiable Secret Sharing: a dealer
// splits a secret using two independent Shamir sharings — one for the
// secret, one for its blinding — and commits to both polynomials'
// coefficients together, so each participant can verify its share against
// a public commitment vector without learning anything about the secret.
//
// Based on "Non-interactive and information-theoretic secure verifiable
// secret sharing" (Pedersen, 1991), section 4.
package pedersen

import (
	"fmt"

	"github.com/evernym/secret-sharing-schemes/internal/errs"
	"github.com/evernym/secret-sharing-schemes/pkg/curve"
	"github.com/evernym/secret-sharing-schemes/pkg/party"
	"github.com/evernym/secret-sharing-schemes/pkg/polynomial"
	"github.com/evernym/secret-sharing-schemes/pkg/shamir"
)

// CommitmentVector maps a coefficient index j in {0,...,k-1} to
// C_j = g^{F_j} * h^{G_j}, where F is the secret polynomial and G is the
// blinding polynomial.
type CommitmentVector map[int]*curve.Point

// Dealing is everything a Pedersen VSS dealer produces: the secret, its
// blinding, the commitment vector broadcast to every participant, and the
// per-participant shares of both polynomials.
type Dealing struct {
	Secret         *curve.Scalar
	Blinding       *curve.Scalar
	Commitments    CommitmentVector
	SecretShares   shamir.Shares
	BlindingShares shamir.Shares
}

// Deal runs the dealer role (spec 4.C): two independent Shamir sharings,
// then a coefficient-wise Pedersen commitment over both polynomials at
// once.
func Deal(threshold, total int, g, h *curve.Point) (*Dealing, error) {
	s, sShares, fPoly, err := shamir.GetSharedSecretWithPolynomial(threshold, total)
	if err != nil {
		return nil, err
	}
	t, tShares, gPoly, err := shamir.GetSharedSecretWithPolynomial(threshold, total)
	if err != nil {
		return nil, err
	}

	fCoeffs := fPoly.Coefficients()
	gCoeffs := gPoly.Coefficients()
	commitments := make(CommitmentVector, threshold)
	for j := 0; j < threshold; j++ {
		commitments[j] = curve.NewPoint().BinaryScalarMult(fCoeffs[j], g, gCoeffs[j], h)
	}

	return &Dealing{
		Secret:         s,
		Blinding:       t,
		Commitments:    commitments,
		SecretShares:   sShares,
		BlindingShares: tShares,
	}, nil
}

// VerifyShare checks a single (s, t) share received by participant id
// against a commitment vector, via one multi-scalar-multiplication:
//
//	prod_{j=0}^{k-1} C_j^{id^j} == g^s * h^t
//
// expressed as bases [C_0, ..., C_{k-1}, -g, -h] with exponents
// [1, id, id^2, ..., id^{k-1}, s, t], testing the result for the group
// identity. Returns errs.ErrShareRejected (wrapped) on failure; commitments
// must contain at least threshold entries, a caller precondition.
func VerifyShare(threshold int, id party.ID, s, t *curve.Scalar, commitments CommitmentVector, g, h *curve.Point) error {
	if len(commitments) < threshold {
		return fmt.Errorf("%w: commitment vector has %d entries, need >= %d", errs.ErrCallerInvariant, len(commitments), threshold)
	}

	exp := polynomial.Vandermonde(id.Scalar(), threshold)

	bases := make([]*curve.Point, 0, threshold+2)
	exps := make([]*curve.Scalar, 0, threshold+2)
	for j := 0; j < threshold; j++ {
		bases = append(bases, commitments[j])
		exps = append(exps, exp[j])
	}
	bases = append(bases, curve.NewPoint().Negate(g), curve.NewPoint().Negate(h))
	exps = append(exps, s, t)

	result := curve.NewPoint().MultiScalarMult(exps, bases)
	if !result.IsIdentity() {
		return fmt.Errorf("%w: share for party %d does not match commitment vector", errs.ErrShareRejected, id)
	}
	return nil
}
