package field

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
)

// Field is the prime field ℤₚ over which all protocol arithmetic takes place.
// The modulus is fixed for one protocol execution; a Field value is safe for
// concurrent use since it is never mutated after construction.
type Field struct {
	p *saferith.Modulus
}

// New validates that p is prime and returns the corresponding field.
// Validation happens once here, never per operation.
func New(p *saferith.Nat) (*Field, error) {
	if p == nil {
		return nil, errors.New("field: nil modulus")
	}
	if !p.Big().ProbablyPrime(32) {
		return nil, fmt.Errorf("field: modulus %s is not prime", p.Big())
	}
	return &Field{p: saferith.ModulusFromNat(p)}, nil
}

// NewUint64 is a convenience constructor for small test moduli.
func NewUint64(p uint64) (*Field, error) {
	return New(new(saferith.Nat).SetUint64(p))
}

// Modulus returns the prime modulus p.
func (f *Field) Modulus() *saferith.Modulus { return f.p }

// BitLen returns the bit length of the modulus.
func (f *Field) BitLen() int { return f.p.BitLen() }

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{n: new(saferith.Nat).SetUint64(0), f: f}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return f.FromUint64(1)
}

// FromUint64 returns v reduced into [0,p).
func (f *Field) FromUint64(v uint64) Element {
	n := new(saferith.Nat).SetUint64(v)
	return Element{n: n.Mod(n, f.p), f: f}
}

// FromBytes interprets b as a big-endian integer reduced into [0,p).
func (f *Field) FromBytes(b []byte) Element {
	n := new(saferith.Nat).SetBytes(b)
	return Element{n: n.Mod(n, f.p), f: f}
}

// Element is a value of ℤₚ. Operations never mutate their operands; each
// returns a fresh Element, matching the immutability of the share type
// built on top.
type Element struct {
	n *saferith.Nat
	f *Field
}

func (e Element) check(o Element) {
	if e.f == nil || o.f == nil {
		panic("field: use of uninitialized element")
	}
	if e.f == o.f {
		return
	}
	// distinct Field values may still describe the same prime, e.g.
	// after unmarshalling
	if e.f.p.Nat().Eq(o.f.p.Nat()) != 1 {
		panic("field: mixing elements of different fields")
	}
}

// Field returns the field this element belongs to.
func (e Element) Field() *Field { return e.f }

// Add returns e + o (mod p).
func (e Element) Add(o Element) Element {
	e.check(o)
	return Element{n: new(saferith.Nat).ModAdd(e.n, o.n, e.f.p), f: e.f}
}

// Sub returns e − o (mod p).
func (e Element) Sub(o Element) Element {
	e.check(o)
	return Element{n: new(saferith.Nat).ModSub(e.n, o.n, e.f.p), f: e.f}
}

// Mul returns e ⋅ o (mod p).
func (e Element) Mul(o Element) Element {
	e.check(o)
	return Element{n: new(saferith.Nat).ModMul(e.n, o.n, e.f.p), f: e.f}
}

// Neg returns −e (mod p).
func (e Element) Neg() Element {
	if e.f == nil {
		panic("field: use of uninitialized element")
	}
	return Element{n: new(saferith.Nat).ModNeg(e.n, e.f.p), f: e.f}
}

// Equal reports whether both elements represent the same value.
func (e Element) Equal(o Element) bool {
	e.check(o)
	return e.n.Eq(o.n) == 1
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	if e.f == nil {
		panic("field: use of uninitialized element")
	}
	return e.n.Eq(new(saferith.Nat).SetUint64(0)) == 1
}

// Bytes returns the big-endian encoding of the reduced value.
func (e Element) Bytes() []byte { return e.n.Bytes() }

func (e Element) String() string {
	if e.f == nil {
		return "<uninitialized>"
	}
	return e.n.Big().String()
}
