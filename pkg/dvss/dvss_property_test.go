package dvss_test

import (
	"testing/quick"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evernym/secret-sharing-schemes/pkg/curve"
	"github.com/evernym/secret-sharing-schemes/pkg/dvss"
	"github.com/evernym/secret-sharing-schemes/pkg/party"
	"github.com/evernym/secret-sharing-schemes/pkg/pedersen"
	"github.com/evernym/secret-sharing-schemes/pkg/shamir"
)

var _ = Describe("PedersenDVSS", func() {
	var g, h *curve.Point

	BeforeEach(func() {
		g, h = pedersen.Generators([]byte("dvss-suite-test"))
	})

	Context("a full run with threshold 5 of 10", func() {
		It("reconstructs the joint secret from any threshold-sized subset of final shares", func() {
			participants, err := dvss.RunLocal(5, 10, g, h)
			Expect(err).NotTo(HaveOccurred())
			Expect(participants).To(HaveLen(10))

			jointSecret := curve.NewScalar()
			for _, p := range participants {
				jointSecret.Add(jointSecret, p.OwnSecret())
			}

			finalShares := shamir.Shares{}
			for _, p := range participants {
				share, err := p.FinalSecretShare()
				Expect(err).NotTo(HaveOccurred())
				finalShares[p.ID()] = share
			}

			subset := shamir.Shares{}
			for _, id := range []party.ID{2, 3, 5, 8, 10} {
				subset[id] = finalShares[id]
			}
			reconstructed, err := shamir.ReconstructSecret(5, subset)
			Expect(err).NotTo(HaveOccurred())
			Expect(reconstructed.Equal(jointSecret)).To(BeTrue())
		})

		It("has every participant's aggregated commitments agree", func() {
			participants, err := dvss.RunLocal(5, 10, g, h)
			Expect(err).NotTo(HaveOccurred())

			first, err := participants[0].FinalCommitments()
			Expect(err).NotTo(HaveOccurred())

			for _, p := range participants[1:] {
				commitments, err := p.FinalCommitments()
				Expect(err).NotTo(HaveOccurred())
				Expect(len(commitments)).To(Equal(len(first)))
				for j := range first {
					Expect(commitments[j].Equal(first[j])).To(BeTrue())
				}
			}
		})
	})

	Context("a tampered share", func() {
		It("is rejected by VerifyShare while every honest share still verifies", func() {
			p1, err := dvss.New(1, 2, 4, g, h)
			Expect(err).NotTo(HaveOccurred())
			peers := make([]*dvss.Participant, 0, 3)
			for _, id := range []party.ID{2, 3, 4} {
				p, err := dvss.New(id, 2, 4, g, h)
				Expect(err).NotTo(HaveOccurred())
				peers = append(peers, p)
			}

			tampered := curve.NewScalar().Add(peers[0].SecretShareFor(1), curve.OneScalar())
			err = p1.ReceivedShare(peers[0].ID(), peers[0].OwnCommitments(), tampered, peers[0].BlindingShareFor(1))
			Expect(err).To(HaveOccurred())

			for _, p := range peers[1:] {
				err := p1.ReceivedShare(p.ID(), p.OwnCommitments(), p.SecretShareFor(1), p.BlindingShareFor(1))
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(p1.ReceivedCount()).To(Equal(2))
		})
	})

	Context("receiving shares in a permuted order", func() {
		It("produces an identical peer-contributed part of the final share regardless of arrival order", func() {
			dealers := make([]*dvss.Participant, 0, 4)
			for _, id := range []party.ID{2, 3, 4, 5} {
				p, err := dvss.New(id, 2, 5, g, h)
				Expect(err).NotTo(HaveOccurred())
				dealers = append(dealers, p)
			}

			orderA := []int{0, 1, 2, 3}
			orderB := []int{3, 1, 0, 2}

			recvInOrder := func(order []int) *curve.Scalar {
				p1, err := dvss.New(1, 2, 5, g, h)
				Expect(err).NotTo(HaveOccurred())
				for _, idx := range order {
					d := dealers[idx]
					Expect(p1.ReceivedShare(d.ID(), d.OwnCommitments(), d.SecretShareFor(1), d.BlindingShareFor(1))).To(Succeed())
				}
				Expect(p1.ComputeFinal()).To(Succeed())
				share, err := p1.FinalSecretShare()
				Expect(err).NotTo(HaveOccurred())
				return curve.NewScalar().Subtract(share, p1.SecretShareFor(1))
			}

			Expect(recvInOrder(orderA).Equal(recvInOrder(orderB))).To(BeTrue())
		})
	})

	Context("the underlying Shamir property", func() {
		It("reconstructs from the lowest threshold identifiers for random threshold/total combinations", func() {
			property := func(totalSeed, subsetSeed uint8) bool {
				total := 3 + int(totalSeed%5) // 3..7
				threshold := 2 + int(subsetSeed%uint8(total-1))
				if threshold < 1 {
					threshold = 1
				}

				secret, shares, err := shamir.GetSharedSecret(threshold, total)
				if err != nil {
					return false
				}

				ids := shamir.SortedIDs(shares)[:threshold]
				subset := shamir.Shares{}
				for _, id := range ids {
					subset[id] = shares[id]
				}

				got, err := shamir.ReconstructSecret(threshold, subset)
				if err != nil {
					return false
				}
				return got.Equal(secret)
			}

			Expect(quick.Check(property, &quick.Config{MaxCount: 50})).To(Succeed())
		})
	})
})
