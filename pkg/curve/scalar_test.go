package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evernym/secret-sharing-schemes/pkg/curve"
)

func TestScalarAddSubtractRoundTrip(t *testing.T) {
	x := curve.RandomScalarFromCSPRNG()
	y := curve.RandomScalarFromCSPRNG()

	sum := curve.NewScalar().Add(x, y)
	back := curve.NewScalar().Subtract(sum, y)
	assert.True(t, back.Equal(x))
}

func TestScalarInvertIsMultiplicativeInverse(t *testing.T) {
	x := curve.RandomScalarFromCSPRNG()
	inv := curve.NewScalar().Invert(x)
	product := curve.NewScalar().Multiply(x, inv)
	assert.True(t, product.Equal(curve.OneScalar()))
}

func TestScalarFromUint64MatchesRepeatedAddition(t *testing.T) {
	want := curve.NewScalar()
	one := curve.OneScalar()
	for i := 0; i < 5; i++ {
		want.Add(want, one)
	}
	got := curve.ScalarFromUint64(5)
	assert.True(t, got.Equal(want))
}

func TestScalarBinaryRoundTrip(t *testing.T) {
	x := curve.RandomScalarFromCSPRNG()
	data, err := x.MarshalBinary()
	require.NoError(t, err)

	back := curve.NewScalar()
	require.NoError(t, back.UnmarshalBinary(data))
	assert.True(t, back.Equal(x))
}

func TestScalarIsZero(t *testing.T) {
	assert.True(t, curve.NewScalar().IsZero())
	assert.False(t, curve.OneScalar().IsZero())
}
