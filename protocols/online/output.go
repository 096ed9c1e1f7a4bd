package online

import (
	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/share"
)

// Output opens an authenticated sharing. The MAC check runs first and
// on failure no value is released; the caller must treat the whole
// computation as compromised.
//
// The sharing must be unmasked (δ = 0); otherwise the opened value
// would be x+δ rather than the secret, and ErrShareMasked is returned.
func Output(z *share.Authenticated, alpha field.Element) (field.Element, error) {
	if !z.IsUnmasked() {
		return field.Element{}, ErrShareMasked
	}
	if !share.Verify(z, alpha) {
		return field.Element{}, ErrMACCheckFailed
	}
	return z.Value(), nil
}
