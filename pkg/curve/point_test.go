package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evernym/secret-sharing-schemes/pkg/curve"
)

func TestScalarBaseMultMatchesScalarMultOfBase(t *testing.T) {
	s := curve.RandomScalarFromCSPRNG()
	base := curve.NewPoint().ScalarBaseMult(curve.OneScalar())

	a := curve.NewPoint().ScalarBaseMult(s)
	b := curve.NewPoint().ScalarMult(s, base)
	assert.True(t, a.Equal(b))
}

func TestMultiScalarMultMatchesSequentialAdds(t *testing.T) {
	g := curve.NewPoint().ScalarBaseMult(curve.OneScalar())
	h := curve.HashToCurve([]byte("multiscalar-test"))

	s := curve.RandomScalarFromCSPRNG()
	tt := curve.RandomScalarFromCSPRNG()

	got := curve.NewPoint().BinaryScalarMult(s, g, tt, h)
	want := curve.NewPoint().Add(
		curve.NewPoint().ScalarMult(s, g),
		curve.NewPoint().ScalarMult(tt, h),
	)
	assert.True(t, got.Equal(want))
}

func TestPointNegateIsInverse(t *testing.T) {
	p := curve.NewPoint().ScalarBaseMult(curve.RandomScalarFromCSPRNG())
	neg := curve.NewPoint().Negate(p)
	sum := curve.NewPoint().Add(p, neg)
	assert.True(t, sum.IsIdentity())
}

func TestHashToCurveIsDeterministic(t *testing.T) {
	a := curve.HashToCurve([]byte("some-label"))
	b := curve.HashToCurve([]byte("some-label"))
	assert.True(t, a.Equal(b))

	c := curve.HashToCurve([]byte("other-label"))
	assert.False(t, a.Equal(c))
}

func TestPointBinaryRoundTrip(t *testing.T) {
	p := curve.NewPoint().ScalarBaseMult(curve.RandomScalarFromCSPRNG())
	data, err := p.MarshalBinary()
	require.NoError(t, err)

	back := curve.NewPoint()
	require.NoError(t, back.UnmarshalBinary(data))
	assert.True(t, back.Equal(p))
}
