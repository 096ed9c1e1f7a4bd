package party

import (
	"encoding/binary"
	"strconv"
)

// ByteSize is the number of bytes required to store an ID.
const ByteSize = 2

// MAX bounds the number of parties one execution can hold.
const MAX = (1 << (ByteSize * 8)) - 1

// ID is the index of a party within one protocol execution.
// Parties are numbered 0 … n−1 and the numbering is fixed for the
// whole execution; the party with the highest index closes the share
// and MAC sums in the protocols that need a designated closer.
type ID uint16

// Bytes returns a []byte slice of length party.ByteSize.
func (id ID) Bytes() []byte {
	bytes := make([]byte, ByteSize)
	binary.BigEndian.PutUint16(bytes, uint16(id))
	return bytes
}

// String returns a base 10 representation of ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// FromBytes reads the first party.ByteSize bytes from b and creates an ID from it.
func FromBytes(b []byte) ID {
	return ID(binary.BigEndian.Uint16(b))
}
