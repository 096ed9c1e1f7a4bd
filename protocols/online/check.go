package online

import (
	"io"

	"github.com/mpcforge/spdz-online/internal/hash"
	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/share"
	"golang.org/x/xerrors"
)

// CheckBatch verifies many sharings at the cost of one MAC comparison.
// A fresh nonce seeds the transcript hash, whose output stream supplies
// the combination coefficients r₁…r_k; the check compares
//
//	Σ rᵢ⋅MACSum(Aᵢ)  ==  α ⋅ Σ rᵢ⋅Value(Aᵢ)
//
// which holds for honest batches and fails with probability 1−1/p for
// any tampered member. Like Verify, it never opens a share but requires
// holding α.
func CheckBatch(rand io.Reader, alpha field.Element, shares ...*share.Authenticated) error {
	if len(shares) == 0 {
		return nil
	}
	f := shares[0].Field()

	nonce := make([]byte, 32)
	if _, err := io.ReadFull(rand, nonce); err != nil {
		return xerrors.Errorf("online: check: sampling nonce: %w", err)
	}
	h := hash.New("spdz-online/mac-check")
	if err := h.WriteAny(nonce); err != nil {
		return xerrors.Errorf("online: check: %w", err)
	}
	coeffs := h.Digest()

	value := f.Zero()
	macs := f.Zero()
	for _, a := range shares {
		r := f.Sample(coeffs)
		value = value.Add(r.Mul(a.Value()))
		macs = macs.Add(r.Mul(a.MACSum()))
	}
	if !macs.Equal(alpha.Mul(value)) {
		return ErrMACCheckFailed
	}
	return nil
}
