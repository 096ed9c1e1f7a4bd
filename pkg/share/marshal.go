package share

import (
	"errors"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
	"github.com/mpcforge/spdz-online/pkg/math/field"
)

// shareMarshal is the wire form of a sharing. It carries the modulus so
// the encoding is self-contained; it never carries the MAC key α.
type shareMarshal struct {
	Modulus []byte
	Offset  []byte
	Shares  [][]byte
	MACs    [][]byte
}

// MarshalBinary implements encoding.BinaryMarshaler using CBOR.
func (a *Authenticated) MarshalBinary() ([]byte, error) {
	sm := &shareMarshal{
		Modulus: a.Field().Modulus().Nat().Bytes(),
		Offset:  a.offset.Bytes(),
		Shares:  make([][]byte, a.N()),
		MACs:    make([][]byte, a.N()),
	}
	for i := 0; i < a.N(); i++ {
		sm.Shares[i] = a.shares[i].Bytes()
		sm.MACs[i] = a.macs[i].Bytes()
	}
	return cbor.Marshal(sm)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The modulus is
// re-validated, so a corrupted or non-prime encoding is rejected here.
func (a *Authenticated) UnmarshalBinary(data []byte) error {
	sm := &shareMarshal{}
	if err := cbor.Unmarshal(data, sm); err != nil {
		return err
	}
	f, err := field.New(new(saferith.Nat).SetBytes(sm.Modulus))
	if err != nil {
		return err
	}
	if len(sm.Shares) == 0 || len(sm.Shares) != len(sm.MACs) {
		return errors.New("share: malformed encoding")
	}
	shares := make([]field.Element, len(sm.Shares))
	macs := make([]field.Element, len(sm.MACs))
	for i := range sm.Shares {
		shares[i] = f.FromBytes(sm.Shares[i])
		macs[i] = f.FromBytes(sm.MACs[i])
	}
	fresh, err := New(f.FromBytes(sm.Offset), shares, macs)
	if err != nil {
		return err
	}
	*a = *fresh
	return nil
}
