package preprocess

import (
	"errors"
	"io"

	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/share"
)

// Dealer is a trusted in-memory stand-in for the offline phase. It
// holds α and fabricates masks and triples on demand. Adequate for
// tests and single-process simulations, nothing more.
type Dealer struct {
	field *field.Field
	alpha field.Element
	n     int
	rand  io.Reader
}

// NewDealer draws the MAC key as a sum of n per-party contributions and
// returns a dealer for an n-party execution over f.
func NewDealer(f *field.Field, n int, rand io.Reader) (*Dealer, error) {
	alpha := f.Zero()
	for i := 0; i < n; i++ {
		alpha = alpha.Add(f.Sample(rand))
	}
	return NewDealerWithKey(f, n, alpha, rand)
}

// NewDealerWithKey is NewDealer with a caller-chosen MAC key, for
// scenarios that need a reproducible α.
func NewDealerWithKey(f *field.Field, n int, alpha field.Element, rand io.Reader) (*Dealer, error) {
	if n < 1 {
		return nil, errors.New("preprocess: need at least one party")
	}
	return &Dealer{field: f, alpha: alpha, n: n, rand: rand}, nil
}

// MACKey returns the global MAC key α.
func (d *Dealer) MACKey() field.Element { return d.alpha }

// Field returns the execution's field.
func (d *Dealer) Field() *field.Field { return d.field }

// N returns the number of parties dealt for.
func (d *Dealer) N() int { return d.n }

// Deal produces an authenticated sharing of x with the given offset:
// the value shares sum to x+δ and the MAC shares to α⋅(x+δ).
func (d *Dealer) Deal(x, offset field.Element) (*share.Authenticated, error) {
	masked := x.Add(offset)
	shares := share.Split(masked, d.n, d.rand)
	macs := share.Split(masked.Mul(d.alpha), d.n, d.rand)
	return share.New(offset, shares, macs)
}

// Mask returns a sharing of a uniformly random value with δ = 0, the
// form Input consumes.
func (d *Dealer) Mask() (*share.Authenticated, error) {
	return d.Deal(d.field.Sample(d.rand), d.field.Zero())
}

// MaskWithOffset returns a random mask carrying a uniformly random
// nonzero-capable offset, for exercising δ propagation.
func (d *Dealer) MaskWithOffset() (*share.Authenticated, error) {
	return d.Deal(d.field.Sample(d.rand), d.field.Sample(d.rand))
}

// Triple returns a fresh Beaver triple with zero offsets.
func (d *Dealer) Triple() (*Triple, error) {
	zero := d.field.Zero()
	a := d.field.Sample(d.rand)
	b := d.field.Sample(d.rand)

	A, err := d.Deal(a, zero)
	if err != nil {
		return nil, err
	}
	B, err := d.Deal(b, zero)
	if err != nil {
		return nil, err
	}
	C, err := d.Deal(a.Mul(b), zero)
	if err != nil {
		return nil, err
	}
	return &Triple{A: A, B: B, C: C}, nil
}
