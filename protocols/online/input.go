package online

import (
	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/share"
	"golang.org/x/xerrors"
)

// Input introduces the public value x as an authenticated sharing,
// consuming one preprocessed mask ⟨r⟩. The correction ε = x − r is
// broadcast once and public; the last party folds it into its value
// share, and ε⋅α into its MAC share, moving both sums by exactly the
// amounts the invariants require. The output inherits the mask's δ.
//
// ε is returned so callers can audit (or actually broadcast) it.
func Input(x field.Element, mask *share.Authenticated, alpha field.Element) (*share.Authenticated, field.Element, error) {
	eps := x.Sub(mask.Value())
	out, err := mask.AddPublic(eps, alpha)
	if err != nil {
		return nil, field.Element{}, xerrors.Errorf("online: input: %w", err)
	}
	return out, eps, nil
}
