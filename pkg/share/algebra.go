package share

import (
	"errors"

	"github.com/mpcforge/spdz-online/pkg/math/field"
)

var errMismatchedN = errors.New("share: sharings have different party counts")

// The linear operations below are the "free" part of the online phase:
// they need no preprocessed material and no communication, and they
// preserve both sharing invariants by construction.

func (a *Authenticated) compatible(b *Authenticated) error {
	if a.N() != b.N() {
		return errMismatchedN
	}
	return nil
}

// Add returns ⟨x+y⟩. Offsets add.
func (a *Authenticated) Add(b *Authenticated) (*Authenticated, error) {
	if err := a.compatible(b); err != nil {
		return nil, err
	}
	n := a.N()
	shares := make([]field.Element, n)
	macs := make([]field.Element, n)
	for i := 0; i < n; i++ {
		shares[i] = a.shares[i].Add(b.shares[i])
		macs[i] = a.macs[i].Add(b.macs[i])
	}
	return New(a.offset.Add(b.offset), shares, macs)
}

// Sub returns ⟨x−y⟩. Offsets subtract.
func (a *Authenticated) Sub(b *Authenticated) (*Authenticated, error) {
	if err := a.compatible(b); err != nil {
		return nil, err
	}
	n := a.N()
	shares := make([]field.Element, n)
	macs := make([]field.Element, n)
	for i := 0; i < n; i++ {
		shares[i] = a.shares[i].Sub(b.shares[i])
		macs[i] = a.macs[i].Sub(b.macs[i])
	}
	return New(a.offset.Sub(b.offset), shares, macs)
}

// AddPublic returns ⟨x+c⟩ for a public constant c. The value correction
// lands on the last party's share and the MAC correction c⋅α on the
// last party's MAC share, so both sums move by exactly c and α⋅c.
func (a *Authenticated) AddPublic(c, alpha field.Element) (*Authenticated, error) {
	n := a.N()
	shares := make([]field.Element, n)
	macs := make([]field.Element, n)
	copy(shares, a.shares)
	copy(macs, a.macs)
	shares[n-1] = shares[n-1].Add(c)
	macs[n-1] = macs[n-1].Add(c.Mul(alpha))
	return New(a.offset, shares, macs)
}

// MulPublic returns ⟨c⋅x⟩ for a public constant c. Every share, MAC
// share and the offset scale by c.
func (a *Authenticated) MulPublic(c field.Element) (*Authenticated, error) {
	n := a.N()
	shares := make([]field.Element, n)
	macs := make([]field.Element, n)
	for i := 0; i < n; i++ {
		shares[i] = a.shares[i].Mul(c)
		macs[i] = a.macs[i].Mul(c)
	}
	return New(a.offset.Mul(c), shares, macs)
}
