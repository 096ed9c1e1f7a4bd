package share_test

import (
	"testing"

	"github.com/mpcforge/spdz-online/internal/test"
	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/share"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	f := test.SmallField()
	one := f.One()

	_, err := share.New(f.Zero(), nil, nil)
	assert.Error(t, err, "empty vectors")

	_, err = share.New(f.Zero(), []field.Element{one, one}, []field.Element{one})
	assert.Error(t, err, "mismatched lengths")
}

func TestInvariantsAfterDeal(t *testing.T) {
	f := test.LargeField()
	rand := test.NewRand("share-invariants")

	for _, n := range []int{1, 2, 3, 7} {
		d := test.NewDealer(f, n, "share-invariants-dealer")
		alpha := d.MACKey()

		x := f.Sample(rand)
		delta := f.Sample(rand)
		a, err := d.Deal(x, delta)
		require.NoError(t, err)

		assert.Equal(t, n, a.N())
		assert.True(t, a.Value().Equal(x.Add(delta)), "Σ shares = x+δ")
		assert.True(t, a.MACSum().Equal(alpha.Mul(x.Add(delta))), "Σ macs = α(x+δ)")
		assert.True(t, share.Verify(a, alpha))
		assert.Equal(t, delta.IsZero(), a.IsUnmasked())
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	f := test.LargeField()
	d := test.NewDealer(f, 3, "share-wrong-key")
	rand := test.NewRand("share-wrong-key-values")

	a, err := d.Deal(f.Sample(rand), f.Zero())
	require.NoError(t, err)

	wrong := d.MACKey().Add(f.One())
	assert.False(t, share.Verify(a, wrong))
}

func TestSplitClosesSum(t *testing.T) {
	f := test.SmallField()
	rand := test.NewRand("share-split")

	for _, n := range []int{1, 2, 5} {
		total := f.Sample(rand)
		parts := share.Split(total, n, rand)
		require.Len(t, parts, n)
		sum := f.Zero()
		for _, p := range parts {
			sum = sum.Add(p)
		}
		assert.True(t, sum.Equal(total))
	}
}

func TestAlgebraPreservesInvariants(t *testing.T) {
	f := test.LargeField()
	d := test.NewDealer(f, 4, "share-algebra")
	alpha := d.MACKey()
	rand := test.NewRand("share-algebra-values")

	x := f.Sample(rand)
	y := f.Sample(rand)
	dx := f.Sample(rand)
	dy := f.Sample(rand)
	c := f.Sample(rand)

	X, err := d.Deal(x, dx)
	require.NoError(t, err)
	Y, err := d.Deal(y, dy)
	require.NoError(t, err)

	sum, err := X.Add(Y)
	require.NoError(t, err)
	assert.True(t, share.Verify(sum, alpha))
	assert.True(t, sum.Value().Sub(sum.Offset()).Equal(x.Add(y)), "plaintexts add")

	diff, err := X.Sub(Y)
	require.NoError(t, err)
	assert.True(t, share.Verify(diff, alpha))
	assert.True(t, diff.Value().Sub(diff.Offset()).Equal(x.Sub(y)), "plaintexts subtract")

	shifted, err := X.AddPublic(c, alpha)
	require.NoError(t, err)
	assert.True(t, share.Verify(shifted, alpha))
	assert.True(t, shifted.Value().Sub(shifted.Offset()).Equal(x.Add(c)), "public constant added once")
	assert.True(t, shifted.Offset().Equal(X.Offset()), "offset untouched")

	scaled, err := X.MulPublic(c)
	require.NoError(t, err)
	assert.True(t, share.Verify(scaled, alpha))
	assert.True(t, scaled.Value().Sub(scaled.Offset()).Equal(x.Mul(c)), "plaintext scales")
	assert.True(t, scaled.Offset().Equal(X.Offset().Mul(c)), "offset scales")
}

func TestAlgebraRejectsMismatchedN(t *testing.T) {
	f := test.SmallField()
	d3 := test.NewDealer(f, 3, "share-mismatch-3")
	d4 := test.NewDealer(f, 4, "share-mismatch-4")
	rand := test.NewRand("share-mismatch-values")

	a, err := d3.Deal(f.Sample(rand), f.Zero())
	require.NoError(t, err)
	b, err := d4.Deal(f.Sample(rand), f.Zero())
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.Error(t, err)
	_, err = a.Sub(b)
	assert.Error(t, err)
}
