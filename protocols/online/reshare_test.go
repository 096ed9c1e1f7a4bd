package online_test

import (
	"context"
	"testing"
	"time"

	"github.com/mpcforge/spdz-online/internal/test"
	"github.com/mpcforge/spdz-online/pkg/round"
	"github.com/mpcforge/spdz-online/pkg/share"
	"github.com/mpcforge/spdz-online/protocols/online"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reshareCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestResharePreserveSecret(t *testing.T) {
	f := test.LargeField()
	d := test.NewDealer(f, 3, "reshare-preserve")
	alpha := d.MACKey()
	rand := test.NewRand("reshare-preserve-values")
	ch := round.NewChannel(3)

	x := f.Sample(rand)
	delta := f.Sample(rand)
	X, err := d.Deal(x, delta)
	require.NoError(t, err)

	mask, err := d.Mask()
	require.NoError(t, err)

	Y, info, err := online.Reshare(reshareCtx(t), X, mask, online.PreserveSecret, alpha, ch, rand)
	require.NoError(t, err)

	assert.True(t, Y.IsUnmasked(), "δ driven to zero")
	assert.True(t, Y.Value().Equal(x), "opens to the secret despite the input offset")
	assert.True(t, share.Verify(Y, alpha))
	assert.True(t, info.Epsilon.Equal(X.Value().Sub(mask.Value())), "ε = Σ(xᵢ−rᵢ)")
	assert.NotEqual(t, xid.ID{}, info.Round)

	// resharing re-randomizes: same secret, fresh vectors
	same := true
	for i := 0; i < 3 && same; i++ {
		same = Y.Share(i).Equal(X.Share(i))
	}
	assert.False(t, same)

	got, err := online.Output(Y, alpha)
	require.NoError(t, err)
	assert.True(t, got.Equal(x))
}

func TestReshareRefreshOffset(t *testing.T) {
	f := test.LargeField()
	d := test.NewDealer(f, 4, "reshare-refresh")
	alpha := d.MACKey()
	rand := test.NewRand("reshare-refresh-values")
	ch := round.NewChannel(4)

	x := f.Sample(rand)
	X, err := d.Deal(x, f.Zero())
	require.NoError(t, err)

	mask1, err := d.Mask()
	require.NoError(t, err)
	Y1, _, err := online.Reshare(reshareCtx(t), X, mask1, online.RefreshOffset, alpha, ch, rand)
	require.NoError(t, err)

	assert.False(t, Y1.IsUnmasked(), "fresh offset is uniform, zero has negligible mass")
	assert.True(t, share.Verify(Y1, alpha))
	assert.True(t, Y1.Value().Sub(Y1.Offset()).Equal(x), "plaintext preserved under the new δ")

	mask2, err := d.Mask()
	require.NoError(t, err)
	Y2, _, err := online.Reshare(reshareCtx(t), X, mask2, online.RefreshOffset, alpha, ch, rand)
	require.NoError(t, err)

	assert.False(t, Y1.Offset().Equal(Y2.Offset()), "offsets differ across calls")
}

func TestReshareValidation(t *testing.T) {
	f := test.SmallField()
	d3 := test.NewDealer(f, 3, "reshare-invalid-3")
	d4 := test.NewDealer(f, 4, "reshare-invalid-4")
	alpha := d3.MACKey()
	rand := test.NewRand("reshare-invalid-values")
	ch := round.NewChannel(3)

	X, err := d3.Deal(f.FromUint64(9), f.Zero())
	require.NoError(t, err)
	mask3, err := d3.Mask()
	require.NoError(t, err)
	mask4, err := d4.Mask()
	require.NoError(t, err)

	_, _, err = online.Reshare(reshareCtx(t), X, mask4, online.PreserveSecret, alpha, ch, rand)
	assert.ErrorIs(t, err, online.ErrMismatchedShares)

	_, _, err = online.Reshare(reshareCtx(t), X, mask3, online.Mode(99), alpha, ch, rand)
	assert.Error(t, err)
}
