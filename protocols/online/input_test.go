package online_test

import (
	"testing"

	"github.com/mpcforge/spdz-online/internal/test"
	"github.com/mpcforge/spdz-online/pkg/preprocess"
	"github.com/mpcforge/spdz-online/pkg/share"
	"github.com/mpcforge/spdz-online/protocols/online"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The worked three-party scenario over F₉₇ with α = 5 and x = 42.
func TestInputWorkedScenario(t *testing.T) {
	f := test.SmallField()
	alpha := f.FromUint64(5)
	d, err := preprocess.NewDealerWithKey(f, 3, alpha, test.NewRand("input-worked"))
	require.NoError(t, err)

	mask, err := d.Mask()
	require.NoError(t, err)

	x := f.FromUint64(42)
	X, eps, err := online.Input(x, mask, alpha)
	require.NoError(t, err)

	assert.True(t, eps.Equal(x.Sub(mask.Value())), "ε = x − r")
	assert.True(t, X.Value().Equal(x), "shares sum to 42")
	assert.True(t, X.MACSum().Equal(alpha.Mul(x)), "macs sum to 5⋅42 mod 97")
	assert.True(t, X.IsUnmasked())

	got, err := online.Output(X, alpha)
	require.NoError(t, err)
	assert.True(t, got.Equal(x))
}

func TestInputInheritsMaskOffset(t *testing.T) {
	f := test.LargeField()
	d := test.NewDealer(f, 4, "input-offset")
	alpha := d.MACKey()
	rand := test.NewRand("input-offset-values")

	mask, err := d.MaskWithOffset()
	require.NoError(t, err)
	require.False(t, mask.IsUnmasked())

	x := f.Sample(rand)
	X, _, err := online.Input(x, mask, alpha)
	require.NoError(t, err)

	assert.True(t, X.Offset().Equal(mask.Offset()), "δ comes from the mask")
	assert.True(t, share.Verify(X, alpha))
	assert.True(t, X.Value().Sub(X.Offset()).Equal(x), "masked value is x+δ")

	_, err = online.Output(X, alpha)
	assert.ErrorIs(t, err, online.ErrShareMasked)
}

func TestInputIsVerifiable(t *testing.T) {
	f := test.LargeField()
	d := test.NewDealer(f, 2, "input-verify")
	alpha := d.MACKey()
	rand := test.NewRand("input-verify-values")

	for i := 0; i < 8; i++ {
		mask, err := d.Mask()
		require.NoError(t, err)
		X, _, err := online.Input(f.Sample(rand), mask, alpha)
		require.NoError(t, err)
		assert.True(t, share.Verify(X, alpha))
	}
}
