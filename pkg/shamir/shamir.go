// Package shamir implements Shamir secret sharing over F_q: split a scalar
// secret into n shares such that any k reconstruct it and fewer reveal
// nothing.
package shamir

import (
	"fmt"
	"sort"

	"github.com/evernym/secret-sharing-schemes/internal/errs"
	"github.com/evernym/secret-sharing-schemes/pkg/curve"
	"github.com/evernym/secret-sharing-schemes/pkg/party"
	"github.com/evernym/secret-sharing-schemes/pkg/polynomial"
)

// Shares maps a participant identifier to its evaluation of a secret
// polynomial, P(i).
type Shares map[party.ID]*curve.Scalar

// GetSharedSecretWithPolynomial samples a random polynomial of degree
// threshold-1, takes the secret as its value at 0, and returns the shares
// at 1..total together with the polynomial that produced them.
func GetSharedSecretWithPolynomial(threshold, total int) (*curve.Scalar, Shares, *polynomial.Polynomial, error) {
	if err := validateParams(threshold, total); err != nil {
		return nil, nil, nil, err
	}

	poly := polynomial.Random(threshold - 1)
	secret := poly.Eval(curve.NewScalar())

	shares := make(Shares, total)
	for _, id := range party.Range(total) {
		shares[id] = poly.Eval(id.Scalar())
	}

	return secret, shares, poly, nil
}

// GetSharedSecret is GetSharedSecretWithPolynomial without the polynomial.
func GetSharedSecret(threshold, total int) (*curve.Scalar, Shares, error) {
	secret, shares, _, err := GetSharedSecretWithPolynomial(threshold, total)
	if err != nil {
		return nil, nil, err
	}
	return secret, shares, nil
}

// ReconstructSecret interpolates P(0) from shares. It requires at least
// threshold entries; if more are supplied, it deterministically picks the
// threshold smallest identifiers rather than relying on map iteration
// order, so reconstruction is reproducible across runs. Calling this with
// fewer than threshold shares is a programmer error.
func ReconstructSecret(threshold int, shares Shares) (*curve.Scalar, error) {
	if len(shares) < threshold {
		return nil, fmt.Errorf("%w: reconstruction needs %d shares, got %d", errs.ErrCallerInvariant, threshold, len(shares))
	}

	ids := SortedIDs(shares)[:threshold]
	secret := curve.NewScalar()
	for _, id := range ids {
		lambda := polynomial.LagrangeBasisAt0(ids, id)
		term := curve.NewScalar().Multiply(lambda, shares[id])
		secret.Add(secret, term)
	}
	return secret, nil
}

// SortedIDs returns the identifiers present in shares, sorted ascending.
func SortedIDs(shares Shares) party.IDSlice {
	ids := make(party.IDSlice, 0, len(shares))
	for id := range shares {
		ids = append(ids, id)
	}
	sort.Sort(ids)
	return ids
}

func validateParams(threshold, total int) error {
	if threshold < 1 || threshold > total {
		return fmt.Errorf("%w: threshold %d must satisfy 1 <= threshold <= %d", errs.ErrCallerInvariant, threshold, total)
	}
	return nil
}
