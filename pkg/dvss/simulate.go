package dvss

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/evernym/secret-sharing-schemes/internal/errs"
	"github.com/evernym/secret-sharing-schemes/pkg/curve"
	"github.com/evernym/secret-sharing-schemes/pkg/party"
)

// RunLocal drives a full n-party DVSS run in process: each participant deals
// its own Pedersen VSS, exchanges shares with every other participant
// concurrently, and aggregates. It exists to exercise the protocol end to
// end without a real transport — a real deployment replaces the share
// exchange below with whatever the network layer looks like, using
// internal/wire to serialize the same (sender, commitments, s, t) tuple
// ReceivedShare consumes here.
//
// Each goroutine below only ever calls ReceivedShare on the Participant it
// owns, reading OwnCommitments/SecretShareFor/BlindingShareFor off others —
// none of which mutate receiver state — so participants never race with
// each other.
func RunLocal(threshold, total int, g, h *curve.Point) ([]*Participant, error) {
	if threshold < 1 || threshold > total {
		return nil, fmt.Errorf("%w: threshold %d must satisfy 1 <= threshold <= %d", errs.ErrCallerInvariant, threshold, total)
	}

	participants := make([]*Participant, total)
	for i, id := range party.Range(total) {
		p, err := New(id, threshold, total, g, h)
		if err != nil {
			return nil, err
		}
		participants[i] = p
	}

	group, _ := errgroup.WithContext(context.Background())
	for _, p := range participants {
		p := p
		group.Go(func() error {
			for _, sender := range participants {
				if sender.ID() == p.ID() {
					continue
				}
				s := sender.SecretShareFor(p.ID())
				t := sender.BlindingShareFor(p.ID())
				if err := p.ReceivedShare(sender.ID(), sender.OwnCommitments(), s, t); err != nil {
					return fmt.Errorf("participant %d rejected share from %d: %w", p.ID(), sender.ID(), err)
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, p := range participants {
		if err := p.ComputeFinal(); err != nil {
			return nil, fmt.Errorf("participant %d: %w", p.ID(), err)
		}
	}

	return participants, nil
}
