// Package wire defines the CBOR encoding of protocol messages exchanged
// between participants: a dealer's commitment vector together with the
// (secret, blinding) share pair it owes one specific recipient.
package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/evernym/secret-sharing-schemes/pkg/curve"
	"github.com/evernym/secret-sharing-schemes/pkg/party"
	"github.com/evernym/secret-sharing-schemes/pkg/pedersen"
)

// DealMessage is the over-the-wire form of one dealer's contribution to one
// recipient: the sender's identity, its full commitment vector (broadcast
// identically to every recipient), and the share pair owed to this specific
// recipient.
type DealMessage struct {
	SenderID      uint32
	Commitments   map[int][]byte
	SecretShare   []byte
	BlindingShare []byte
}

// EncodeDeal serializes a dealer's (commitments, s, t) contribution to a
// single recipient into CBOR.
func EncodeDeal(sender party.ID, commitments pedersen.CommitmentVector, s, t *curve.Scalar) ([]byte, error) {
	encodedCommitments := make(map[int][]byte, len(commitments))
	for j, c := range commitments {
		b, err := c.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("wire: encoding commitment %d: %w", j, err)
		}
		encodedCommitments[j] = b
	}

	sBytes, err := s.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("wire: encoding secret share: %w", err)
	}
	tBytes, err := t.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("wire: encoding blinding share: %w", err)
	}

	msg := DealMessage{
		SenderID:      uint32(sender),
		Commitments:   encodedCommitments,
		SecretShare:   sBytes,
		BlindingShare: tBytes,
	}
	return cbor.Marshal(msg)
}

// DecodeDeal parses a DealMessage produced by EncodeDeal.
func DecodeDeal(data []byte) (party.ID, pedersen.CommitmentVector, *curve.Scalar, *curve.Scalar, error) {
	var msg DealMessage
	if err := cbor.Unmarshal(data, &msg); err != nil {
		return 0, nil, nil, nil, fmt.Errorf("wire: decoding deal message: %w", err)
	}

	commitments := make(pedersen.CommitmentVector, len(msg.Commitments))
	for j, b := range msg.Commitments {
		p := curve.NewPoint()
		if err := p.UnmarshalBinary(b); err != nil {
			return 0, nil, nil, nil, fmt.Errorf("wire: decoding commitment %d: %w", j, err)
		}
		commitments[j] = p
	}

	s := curve.NewScalar()
	if err := s.UnmarshalBinary(msg.SecretShare); err != nil {
		return 0, nil, nil, nil, fmt.Errorf("wire: decoding secret share: %w", err)
	}
	t := curve.NewScalar()
	if err := t.UnmarshalBinary(msg.BlindingShare); err != nil {
		return 0, nil, nil, nil, fmt.Errorf("wire: decoding blinding share: %w", err)
	}

	return party.ID(msg.SenderID), commitments, s, t, nil
}
