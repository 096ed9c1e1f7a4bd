// Package preprocess defines the interface between the online phase and
// the offline (preprocessing) phase that feeds it correlated randomness.
package preprocess

import (
	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/share"
)

// Source supplies the precomputed material the online protocols consume:
// authenticated masks, multiplication triples, the global MAC key α and
// the field parameters. A production Source is the SPDZ offline phase;
// tests and simulations use the trusted Dealer from this package.
type Source interface {
	// Mask returns a fresh authenticated sharing of a uniformly random
	// value. The offset δ may be nonzero depending on the source.
	Mask() (*share.Authenticated, error)
	// Triple returns a fresh multiplication triple. Each triple must be
	// consumed by exactly one Multiply; reuse breaks the protocol.
	Triple() (*Triple, error)
	// MACKey returns the global MAC key α, constant for the execution.
	MACKey() field.Element
	// Field returns the prime field of the execution.
	Field() *field.Field
}

// Triple is a Beaver triple: authenticated sharings of a, b and c with
// c = a⋅b on the plaintexts.
type Triple struct {
	A, B, C *share.Authenticated
}
