// Package party defines the participant identifiers shared across the
// polynomial, Shamir, Pedersen VSS, and DVSS layers.
package party

import (
	"fmt"
	"sort"

	"github.com/evernym/secret-sharing-schemes/internal/errs"
	"github.com/evernym/secret-sharing-schemes/pkg/curve"
)

// ID identifies a participant. Valid identifiers are in {1,...,n}; 0 is
// reserved for the secret's own evaluation point and must never be used as
// a participant id. It is a uint32 to match the wire format's sender field.
type ID uint32

// Scalar converts id into the field element the shared polynomials are
// evaluated at.
func (id ID) Scalar() *curve.Scalar {
	return curve.ScalarFromUint64(uint64(id))
}

// Validate checks that id is a legal participant identifier among a total
// of n parties.
func (id ID) Validate(n int) error {
	if id == 0 {
		return fmt.Errorf("%w: party id 0 is reserved for the secret's evaluation point", errs.ErrCallerInvariant)
	}
	if n < 0 || uint32(id) > uint32(n) {
		return fmt.Errorf("%w: party id %d exceeds total %d", errs.ErrCallerInvariant, id, n)
	}
	return nil
}

// IDSlice is a slice of IDs with a deterministic, sorted ordering — used
// anywhere iteration order must be reproducible (e.g. picking which k
// shares to reconstruct from).
type IDSlice []ID

func (s IDSlice) Len() int           { return len(s) }
func (s IDSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s IDSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sorted returns a sorted copy of s.
func (s IDSlice) Sorted() IDSlice {
	out := make(IDSlice, len(s))
	copy(out, s)
	sort.Sort(out)
	return out
}

// Range returns the identifiers 1..n, in order — the full participant set
// for an n-party run.
func Range(n int) IDSlice {
	out := make(IDSlice, n)
	for i := 0; i < n; i++ {
		out[i] = ID(i + 1)
	}
	return out
}
