package online

import (
	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/preprocess"
	"github.com/mpcforge/spdz-online/pkg/share"
	"golang.org/x/xerrors"
)

// Multiply consumes one Beaver triple (A,B,C) to combine ⟨x⟩ and ⟨y⟩.
// The openings e = x−a and d = y−b are public by construction and are
// returned alongside the result; the caller owns the reveal mechanics.
//
// The construction is Z = C + e⋅B + d⋅A share- and MAC-wise, with δ
// inherited from C. Note the e⋅d cross term of the textbook Beaver
// identity is not folded in: the opened result satisfies
//
//	open(Z) + e⋅d = x⋅y
//
// Callers needing the full product add e⋅d via AddPublic.
// Each triple must be used exactly once.
func Multiply(x, y *share.Authenticated, t *preprocess.Triple) (*share.Authenticated, field.Element, field.Element, error) {
	n := x.N()
	if y.N() != n || t.A.N() != n || t.B.N() != n || t.C.N() != n {
		return nil, field.Element{}, field.Element{}, ErrMismatchedShares
	}

	e := x.Value().Sub(t.A.Value())
	d := y.Value().Sub(t.B.Value())

	shares := make([]field.Element, n)
	macs := make([]field.Element, n)
	for i := 0; i < n; i++ {
		shares[i] = t.C.Share(i).Add(e.Mul(t.B.Share(i))).Add(d.Mul(t.A.Share(i)))
		macs[i] = t.C.MAC(i).Add(e.Mul(t.B.MAC(i))).Add(d.Mul(t.A.MAC(i)))
	}

	z, err := share.New(t.C.Offset(), shares, macs)
	if err != nil {
		return nil, field.Element{}, field.Element{}, xerrors.Errorf("online: multiply: %w", err)
	}
	return z, e, d, nil
}
