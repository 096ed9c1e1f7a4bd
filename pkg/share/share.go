// Package share implements the MAC-authenticated additive sharing ⟨x⟩
// used throughout the online phase.
//
// A sharing of the secret x among n parties consists of value shares
// x₀ … xₙ₋₁, MAC shares m₀ … mₙ₋₁ and a public offset δ, subject to
//
//	Σ xᵢ = x + δ
//	Σ mᵢ = α ⋅ (x + δ)
//
// where α is the global MAC key of the execution. α is deliberately not
// part of this type: it is passed into every operation that needs it so
// that serializing a share can never leak it.
package share

import (
	"errors"
	"io"

	"github.com/mpcforge/spdz-online/pkg/math/field"
)

// Authenticated is one authenticated sharing ⟨x⟩. Values are immutable
// after construction; every protocol step produces a fresh sharing.
type Authenticated struct {
	offset field.Element
	shares []field.Element
	macs   []field.Element
}

// New constructs a sharing from its components. The slices are copied.
func New(offset field.Element, shares, macs []field.Element) (*Authenticated, error) {
	if len(shares) == 0 {
		return nil, errors.New("share: empty share vector")
	}
	if len(shares) != len(macs) {
		return nil, errors.New("share: share and MAC vectors differ in length")
	}
	s := make([]field.Element, len(shares))
	m := make([]field.Element, len(macs))
	copy(s, shares)
	copy(m, macs)
	return &Authenticated{offset: offset, shares: s, macs: m}, nil
}

// N returns the number of parties of this sharing.
func (a *Authenticated) N() int { return len(a.shares) }

// Field returns the field the sharing lives in.
func (a *Authenticated) Field() *field.Field { return a.offset.Field() }

// Offset returns the public offset δ.
func (a *Authenticated) Offset() field.Element { return a.offset }

// Share returns party i's value share.
func (a *Authenticated) Share(i int) field.Element { return a.shares[i] }

// MAC returns party i's MAC share.
func (a *Authenticated) MAC(i int) field.Element { return a.macs[i] }

// Value returns Σ shares, the masked value x+δ. It equals the secret
// only when δ = 0; see IsUnmasked.
func (a *Authenticated) Value() field.Element {
	sum := a.shares[0]
	for _, s := range a.shares[1:] {
		sum = sum.Add(s)
	}
	return sum
}

// MACSum returns Σ MAC shares.
func (a *Authenticated) MACSum() field.Element {
	sum := a.macs[0]
	for _, m := range a.macs[1:] {
		sum = sum.Add(m)
	}
	return sum
}

// IsUnmasked reports whether δ = 0, i.e. whether Value() is the
// plaintext secret. Output requires this; Reshare in preserve-secret
// mode establishes it.
func (a *Authenticated) IsUnmasked() bool { return a.offset.IsZero() }

// Verify is the consistency predicate MACSum == α ⋅ Value. It never
// opens the share; it does require holding α, so it is only meaningful
// for a trusted verifier.
func Verify(a *Authenticated, alpha field.Element) bool {
	return a.MACSum().Equal(alpha.Mul(a.Value()))
}

// Split writes total as a sum of n uniformly random summands: n−1 are
// drawn from rand and the last one closes the sum exactly.
func Split(total field.Element, n int, rand io.Reader) []field.Element {
	f := total.Field()
	out := make([]field.Element, n)
	sum := f.Zero()
	for i := 0; i < n-1; i++ {
		out[i] = f.Sample(rand)
		sum = sum.Add(out[i])
	}
	out[n-1] = total.Sub(sum)
	return out
}
