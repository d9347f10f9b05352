// Package dvss implements Pedersen Decentralized VSS: n parties each deal a
// Pedersen VSS of their own secret, exchange shares, and aggregate so that
// every party ends up with a share of the sum of all n secrets, verifiable
// against the sum of all n commitment vectors.
//
// # Protocol
//
// Each participant moves through three phases:
//
//  1. Dealing — construct a Participant. It runs its own Pedersen VSS deal
//     and holds the result: its own secret, commitment vector, and the
//     shares it will hand to every peer.
//  2. Collecting — call ReceivedShare once per peer, in any order, as that
//     peer's (commitment vector, share) pair arrives. Each call verifies
//     the share against the sender's commitments before storing it; a
//     failing share is rejected, never stored.
//  3. Finalizing — once shares from all n-1 peers have been accepted, call
//     ComputeFinal. It sums commitments and shares componentwise, re-
//     verifies the aggregate, and exposes FinalSecretShare.
//
// Based on "Non-interactive and information-theoretic secure verifiable
// secret sharing" (Pedersen, 1991), section 5.
package dvss

import (
	"fmt"

	"github.com/evernym/secret-sharing-schemes/internal/errs"
	"github.com/evernym/secret-sharing-schemes/pkg/curve"
	"github.com/evernym/secret-sharing-schemes/pkg/party"
	"github.com/evernym/secret-sharing-schemes/pkg/pedersen"
)

// State is the participant's position in its local state machine. There
// are no back-edges: a participant that wants to abandon the protocol
// simply drops its state and a restart is a fresh instance.
type State int

const (
	// StateDealt is entered by New: the participant has run its own
	// Pedersen VSS dealing and is ready to receive peer shares.
	StateDealt State = iota
	// StateCollecting is entered on the first accepted peer share and
	// remains until ComputeFinal succeeds.
	StateCollecting
	// StateFinalized is entered by ComputeFinal, once and for good.
	StateFinalized
)

type peerShare struct {
	s, t *curve.Scalar
}

// Participant holds one party's state across a single DVSS run.
type Participant struct {
	id        party.ID
	threshold int
	total     int
	g, h      *curve.Point

	state State

	ownSecret         *curve.Scalar
	ownCommitments    pedersen.CommitmentVector
	ownSecretShares   map[party.ID]*curve.Scalar
	ownBlindingShares map[party.ID]*curve.Scalar

	peerCommitments map[party.ID]pedersen.CommitmentVector
	peerShares      map[party.ID]peerShare

	finalCommitments pedersen.CommitmentVector
	finalSecretShare *curve.Scalar
}

// New deals a Pedersen VSS for a fresh random secret and returns the
// participant holding it (phase 0, state FRESH -> DEALT).
func New(id party.ID, threshold, total int, g, h *curve.Point) (*Participant, error) {
	if err := id.Validate(total); err != nil {
		return nil, err
	}
	if threshold < 1 || threshold > total {
		return nil, fmt.Errorf("%w: threshold %d must satisfy 1 <= threshold <= %d", errs.ErrCallerInvariant, threshold, total)
	}

	dealing, err := pedersen.Deal(threshold, total, g, h)
	if err != nil {
		return nil, err
	}

	return &Participant{
		id:                id,
		threshold:         threshold,
		total:             total,
		g:                 g,
		h:                 h,
		state:             StateDealt,
		ownSecret:         dealing.Secret,
		ownCommitments:    dealing.Commitments,
		ownSecretShares:   dealing.SecretShares,
		ownBlindingShares: dealing.BlindingShares,
		peerCommitments:   make(map[party.ID]pedersen.CommitmentVector),
		peerShares:        make(map[party.ID]peerShare),
	}, nil
}

// ID returns this participant's identifier.
func (p *Participant) ID() party.ID { return p.id }

// State returns the participant's current phase.
func (p *Participant) State() State { return p.state }

// OwnSecret returns the secret this participant dealt (its contribution to
// the joint secret).
func (p *Participant) OwnSecret() *curve.Scalar { return p.ownSecret }

// OwnCommitments returns the commitment vector this participant broadcasts
// to every peer.
func (p *Participant) OwnCommitments() pedersen.CommitmentVector { return p.ownCommitments }

// SecretShareFor and BlindingShareFor return the (s, t) pair this
// participant privately owes to peer id — the values a transport layer
// sends on this participant's behalf.
func (p *Participant) SecretShareFor(id party.ID) *curve.Scalar   { return p.ownSecretShares[id] }
func (p *Participant) BlindingShareFor(id party.ID) *curve.Scalar { return p.ownBlindingShares[id] }

// ReceivedCount returns how many peer shares have been accepted so far.
func (p *Participant) ReceivedCount() int { return len(p.peerShares) }

// ReceivedShare processes a share this participant received from sender
// (phase 1). Verifies it against the sender's commitment vector before
// storing; on failure the share is rejected and not stored, and
// errs.ErrShareRejected is returned. May be called in any order with
// respect to sender identifiers — the eventual aggregation is order-
// independent because group and field addition are commutative.
func (p *Participant) ReceivedShare(senderID party.ID, senderCommitments pedersen.CommitmentVector, s, t *curve.Scalar) error {
	if p.state == StateFinalized {
		return fmt.Errorf("%w: participant %d already finalized", errs.ErrCallerInvariant, p.id)
	}
	if err := senderID.Validate(p.total); err != nil {
		return err
	}
	if senderID == p.id {
		return fmt.Errorf("%w: participant %d cannot receive a share from itself", errs.ErrCallerInvariant, p.id)
	}
	if _, ok := p.peerCommitments[senderID]; ok {
		return fmt.Errorf("%w: share from %d already recorded", errs.ErrCallerInvariant, senderID)
	}

	if err := pedersen.VerifyShare(p.threshold, p.id, s, t, senderCommitments, p.g, p.h); err != nil {
		return err
	}

	p.peerCommitments[senderID] = senderCommitments
	p.peerShares[senderID] = peerShare{s: s, t: t}
	p.state = StateCollecting
	return nil
}

// ComputeFinal aggregates the n-1 accepted peer contributions with this
// participant's own dealing (phase 2): commitment vectors and shares sum
// componentwise, the aggregate is re-verified as a self-check, and
// FinalSecretShare becomes available. Requires shares from all n-1 peers
// to have been accepted; calling it earlier is a caller error.
func (p *Participant) ComputeFinal() error {
	if p.state == StateFinalized {
		return fmt.Errorf("%w: participant %d already finalized", errs.ErrCallerInvariant, p.id)
	}
	if len(p.peerCommitments) != p.total-1 || len(p.peerShares) != p.total-1 {
		return fmt.Errorf("%w: need shares from all %d peers, have %d", errs.ErrCallerInvariant, p.total-1, len(p.peerShares))
	}

	final := make(pedersen.CommitmentVector, p.threshold)
	for j := 0; j < p.threshold; j++ {
		sum := curve.NewPoint().Add(curve.NewPoint(), p.ownCommitments[j])
		for _, c := range p.peerCommitments {
			sum.Add(sum, c[j])
		}
		final[j] = sum
	}

	finalS := curve.NewScalar().Add(curve.NewScalar(), p.ownSecretShares[p.id])
	finalT := curve.NewScalar().Add(curve.NewScalar(), p.ownBlindingShares[p.id])
	for _, share := range p.peerShares {
		finalS.Add(finalS, share.s)
		finalT.Add(finalT, share.t)
	}

	if err := pedersen.VerifyShare(p.threshold, p.id, finalS, finalT, final, p.g, p.h); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrAggregationSelfCheck, err)
	}

	p.finalCommitments = final
	p.finalSecretShare = finalS
	p.state = StateFinalized

	// peer_* state is no longer needed once sealed.
	p.peerCommitments = nil
	p.peerShares = nil
	return nil
}

// FinalSecretShare returns this participant's share of the joint secret.
// Valid only after ComputeFinal has succeeded.
func (p *Participant) FinalSecretShare() (*curve.Scalar, error) {
	if p.state != StateFinalized {
		return nil, fmt.Errorf("%w: participant %d has not finalized", errs.ErrCallerInvariant, p.id)
	}
	return p.finalSecretShare, nil
}

// FinalCommitments returns the aggregated commitment vector for the joint
// secret. Valid only after ComputeFinal has succeeded.
func (p *Participant) FinalCommitments() (pedersen.CommitmentVector, error) {
	if p.state != StateFinalized {
		return nil, fmt.Errorf("%w: participant %d has not finalized", errs.ErrCallerInvariant, p.id)
	}
	return p.finalCommitments, nil
}
